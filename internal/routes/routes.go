// Package routes defines the API routing configuration.
// It wires repositories into services and services into handlers, and
// registers all HTTP routes with their middleware.
package routes

import (
	"tipjar/internal/config"
	"tipjar/internal/handlers"
	"tipjar/internal/middleware"
	"tipjar/internal/models"
	"tipjar/internal/repositories"
	"tipjar/internal/services/auth"
	"tipjar/internal/services/fees"
	"tipjar/internal/services/leaderboard"
	"tipjar/internal/services/rates"
	"tipjar/internal/services/tips"
	"tipjar/internal/services/topup"
	"tipjar/internal/services/user"
	"tipjar/internal/services/withdrawal"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	walletRepo := repositories.NewWalletRepository(db)
	tipRepo := repositories.NewTipRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	leaderboardRepo := repositories.NewLeaderboardRepository(db)
	topUpRepo := repositories.NewTopUpRepository(db)

	txRunner := repositories.NewTxRunner(db)

	minimumFee, feePercent := config.FeeSettings()
	maxTipSats, maxTipsWithdrawable := config.WithdrawalSettings()
	feeCalc := fees.NewCalculator(fees.Config{MinimumFee: minimumFee, FeePercent: feePercent})

	// Services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo, walletRepo)
	rateService := rates.NewService(repositories.CacheService)
	tipService := tips.NewService(tipRepo, walletRepo, rateService, txRunner, feeCalc, repositories.CacheService)
	withdrawalService := withdrawal.NewService(
		tipRepo,
		walletRepo,
		withdrawalRepo,
		txRunner,
		repositories.CacheService,
		feeCalc,
		withdrawal.Limits{MaxTotal: maxTipSats, MaxCount: maxTipsWithdrawable},
	)
	leaderboardService := leaderboard.NewService(leaderboardRepo, tipRepo, repositories.CacheService)
	topUpService := topup.NewService(topUpRepo, walletRepo, rateService, repositories.CacheService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, walletRepo)
	tipHandler := handlers.NewTipHandler(tipService)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	topUpHandler := handlers.NewTopUpHandler(topUpService)
	ratesHandler := handlers.NewRatesHandler(rateService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the tipjar API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Public endpoints
	api.Post("/login", authHandler.Login)
	api.Post("/register", userHandler.Register)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/health", handlers.HealthCheck)
	api.Get("/rates/:currency", ratesHandler.GetRate)
	api.Get("/leaderboards", leaderboardHandler.List)
	api.Get("/tips/:ref", tipHandler.Show)

	// Authenticated endpoints
	authed := api.Group("/", middleware.Auth)
	authed.Post("/logout", authHandler.Logout)
	authed.Post("/change-password", authHandler.ChangePassword)
	authed.Get("/me", userHandler.Profile)

	authed.Post("/tips", middleware.HasPermission(models.PermissionTipWrite), tipHandler.Create)
	authed.Get("/tips", tipHandler.List)
	authed.Post("/tips/:ref/claim", tipHandler.Claim)
	authed.Post("/tips/reclaim", tipHandler.Reclaim)

	authed.Get("/withdrawals/preview", withdrawalHandler.Preview)
	authed.Post("/withdrawals", middleware.HasPermission(models.PermissionWithdrawalWrite), withdrawalHandler.Withdraw)
	authed.Get("/withdrawals", withdrawalHandler.History)

	authed.Post("/leaderboards", leaderboardHandler.Create)
	authed.Put("/leaderboards/:id", leaderboardHandler.Update)
	authed.Delete("/leaderboards/:id", leaderboardHandler.Delete)
	authed.Get("/leaderboards/:id/entries", leaderboardHandler.Entries)

	authed.Post("/topups", topUpHandler.TopUp)
	authed.Get("/topups", topUpHandler.History)

	// Admin endpoints
	admin := api.Group("/admin", middleware.Auth, middleware.AdminOnly)
	admin.Post("/rates", middleware.HasPermission(models.PermissionRatesWrite), ratesHandler.SetRate)
}
