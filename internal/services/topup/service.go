package topup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"tipjar/internal/models"
	"tipjar/internal/repositories"
	"tipjar/internal/services/rates"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

// Service errors
var (
	ErrInvalidAmount = errors.New("top-up amount must be positive")
	ErrCardDeclined  = errors.New("card charge failed")
)

// Request describes a fiat card top-up. CardToken is a Stripe card token
// produced client-side; the raw card never reaches this service.
type Request struct {
	FiatAmount float64 `json:"fiat_amount"`
	Currency   string  `json:"currency"`
	CardToken  string  `json:"card_token"`
}

// Service charges a card in fiat and credits the wallet with sats at the
// current exchange rate.
type Service interface {
	TopUp(ctx context.Context, userID uint, req Request) (*models.TopUp, error)
	History(ctx context.Context, userID uint, limit, offset int) ([]models.TopUp, error)
}

// WalletCache is the cache invalidation hook needed after a credit.
type WalletCache interface {
	InvalidateWallet(ctx context.Context, userID uint) error
}

// createCharge is swapped out in tests.
var createCharge = charge.New

type service struct {
	topups  repositories.TopUpRepository
	wallets repositories.WalletRepository
	rates   rates.Service
	cache   WalletCache
}

// NewService creates a new top-up service
func NewService(
	topups repositories.TopUpRepository,
	wallets repositories.WalletRepository,
	rateService rates.Service,
	cache WalletCache,
) Service {
	if topups == nil {
		panic("top-up repository is required")
	}
	if wallets == nil {
		panic("wallet repository is required")
	}
	if rateService == nil {
		panic("rate service is required")
	}

	return &service{
		topups:  topups,
		wallets: wallets,
		rates:   rateService,
		cache:   cache,
	}
}

func (s *service) TopUp(ctx context.Context, userID uint, req Request) (*models.TopUp, error) {
	if req.FiatAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	sats, err := s.rates.Convert(ctx, req.FiatAmount, req.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to price top-up: %w", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(int64(math.Round(req.FiatAmount * 100))),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String("tipjar wallet top-up"),
	}
	if err := params.SetSource(req.CardToken); err != nil {
		return nil, fmt.Errorf("invalid card token: %w", err)
	}

	ch, err := createCharge(params)
	if err != nil {
		log.Printf("stripe charge failed for user %d: %v", userID, err)
		return nil, ErrCardDeclined
	}

	record := &models.TopUp{
		UserID:         userID,
		FiatAmount:     req.FiatAmount,
		FiatCurrency:   req.Currency,
		AmountSats:     sats,
		StripeChargeID: ch.ID,
	}
	if err := s.topups.Create(record); err != nil {
		return nil, err
	}

	if err := s.wallets.Credit(userID, sats); err != nil {
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateWallet(ctx, userID); err != nil {
			log.Printf("failed to invalidate wallet cache for user %d: %v", userID, err)
		}
	}
	return record, nil
}

func (s *service) History(ctx context.Context, userID uint, limit, offset int) ([]models.TopUp, error) {
	return s.topups.GetByUser(userID, limit, offset)
}
