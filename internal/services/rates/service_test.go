package rates

import (
	"context"
	"testing"

	"tipjar/internal/repositories/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateStore struct {
	mock.Mock
}

func (m *MockRateStore) CacheRate(ctx context.Context, currency string, rate float64) error {
	return m.Called(ctx, currency, rate).Error(0)
}

func (m *MockRateStore) GetRate(ctx context.Context, currency string) (float64, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(float64), args.Error(1)
}

func TestService_Convert(t *testing.T) {
	store := new(MockRateStore)
	store.On("GetRate", mock.Anything, "USD").Return(50_000.0, nil)

	s := NewService(store)

	// $500 at $50k/BTC is exactly 0.01 BTC.
	sats, err := s.Convert(context.Background(), 500, "usd")
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), sats)

	// Sub-sat remainders round to the nearest sat.
	sats, err = s.Convert(context.Background(), 0.01, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(20), sats)
}

func TestService_Convert_Errors(t *testing.T) {
	store := new(MockRateStore)
	store.On("GetRate", mock.Anything, "EUR").Return(0.0, cache.ErrCacheMiss)

	s := NewService(store)

	_, err := s.Convert(context.Background(), 10, "EUR")
	assert.ErrorIs(t, err, ErrRateUnavailable)

	_, err = s.Convert(context.Background(), -5, "USD")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestService_SetRate(t *testing.T) {
	store := new(MockRateStore)
	store.On("CacheRate", mock.Anything, "CHF", 62_500.0).Return(nil)

	s := NewService(store)

	require.NoError(t, s.SetRate(context.Background(), " chf ", 62_500))
	assert.ErrorIs(t, s.SetRate(context.Background(), "USD", 0), ErrInvalidRate)

	store.AssertExpectations(t)
}
