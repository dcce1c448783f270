package handlers

import (
	"errors"

	"tipjar/internal/middleware"
	"tipjar/internal/repositories"
	"tipjar/internal/services/user"
	"tipjar/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
	walletRepo  repositories.WalletRepository
}

func NewUserHandler(userService user.Service, walletRepo repositories.WalletRepository) *UserHandler {
	return &UserHandler{
		userService: userService,
		walletRepo:  walletRepo,
	}
}

// Register creates a new user with an empty sats wallet
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input user.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := h.userService.Register(input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    created.ID,
		"email": created.Email,
		"name":  created.Name,
	})
}

// Profile returns the authenticated user's profile and balance
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	u, err := h.userService.GetProfile(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	wallet, err := h.walletRepo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load wallet"})
	}

	return c.JSON(fiber.Map{
		"id":                u.ID,
		"email":             u.Email,
		"name":              u.Name,
		"role":              u.Role,
		"balance":           wallet.Balance,
		"balance_formatted": utils.FormatSats(wallet.Balance),
	})
}
