package rates

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"tipjar/internal/repositories/cache"
)

const satsPerBTC = 100_000_000

// Service errors
var (
	ErrRateUnavailable = errors.New("no exchange rate for currency")
	ErrInvalidRate     = errors.New("rate must be positive")
	ErrInvalidAmount   = errors.New("amount must be positive")
)

// Service converts fiat amounts to sats using rates held in Redis.
// A rate is the fiat price of one BTC, pushed in by an admin; there is
// no outbound rate polling.
type Service interface {
	Convert(ctx context.Context, fiatAmount float64, currency string) (int64, error)
	SetRate(ctx context.Context, currency string, btcPrice float64) error
	GetRate(ctx context.Context, currency string) (float64, error)
}

// RateStore is the subset of the cache service the rates service needs.
type RateStore interface {
	CacheRate(ctx context.Context, currency string, rate float64) error
	GetRate(ctx context.Context, currency string) (float64, error)
}

type service struct {
	store RateStore
}

func NewService(store RateStore) Service {
	if store == nil {
		panic("rate store is required")
	}
	return &service{store: store}
}

func (s *service) Convert(ctx context.Context, fiatAmount float64, currency string) (int64, error) {
	if fiatAmount <= 0 {
		return 0, ErrInvalidAmount
	}

	rate, err := s.GetRate(ctx, currency)
	if err != nil {
		return 0, err
	}

	sats := int64(math.Round(fiatAmount / rate * satsPerBTC))
	return sats, nil
}

func (s *service) SetRate(ctx context.Context, currency string, btcPrice float64) error {
	if btcPrice <= 0 {
		return ErrInvalidRate
	}
	if err := s.store.CacheRate(ctx, normalize(currency), btcPrice); err != nil {
		return fmt.Errorf("failed to store rate: %w", err)
	}
	return nil
}

func (s *service) GetRate(ctx context.Context, currency string) (float64, error) {
	rate, err := s.store.GetRate(ctx, normalize(currency))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return 0, ErrRateUnavailable
		}
		return 0, err
	}
	if rate <= 0 {
		return 0, ErrRateUnavailable
	}
	return rate, nil
}

func normalize(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}
