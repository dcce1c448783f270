package topup

import (
	"context"
	"errors"
	"testing"

	"tipjar/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
)

type MockTopUpRepo struct {
	mock.Mock
}

type MockWalletRepo struct {
	mock.Mock
}

type MockRates struct {
	mock.Mock
}

func stubCharge(t *testing.T, fn func(*stripe.ChargeParams) (*stripe.Charge, error)) {
	t.Helper()
	orig := createCharge
	createCharge = fn
	t.Cleanup(func() { createCharge = orig })
}

func TestService_TopUp(t *testing.T) {
	topups := new(MockTopUpRepo)
	wallets := new(MockWalletRepo)
	rateSvc := new(MockRates)

	var charged *stripe.ChargeParams
	stubCharge(t, func(params *stripe.ChargeParams) (*stripe.Charge, error) {
		charged = params
		return &stripe.Charge{ID: "ch_123"}, nil
	})

	rateSvc.On("Convert", mock.Anything, 25.0, "USD").Return(int64(50_000), nil)
	topups.On("Create", mock.Anything).Return(nil)
	wallets.On("Credit", uint(1), int64(50_000)).Return(nil)

	s := NewService(topups, wallets, rateSvc, nil)
	record, err := s.TopUp(context.Background(), 1, Request{
		FiatAmount: 25,
		Currency:   "USD",
		CardToken:  "tok_visa",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(50_000), record.AmountSats)
	assert.Equal(t, "ch_123", record.StripeChargeID)
	require.NotNil(t, charged)
	assert.Equal(t, int64(2500), *charged.Amount)

	topups.AssertExpectations(t)
	wallets.AssertExpectations(t)
}

func TestService_TopUp_CardDeclined(t *testing.T) {
	topups := new(MockTopUpRepo)
	wallets := new(MockWalletRepo)
	rateSvc := new(MockRates)

	stubCharge(t, func(params *stripe.ChargeParams) (*stripe.Charge, error) {
		return nil, errors.New("card_declined")
	})

	rateSvc.On("Convert", mock.Anything, 25.0, "USD").Return(int64(50_000), nil)

	s := NewService(topups, wallets, rateSvc, nil)
	_, err := s.TopUp(context.Background(), 1, Request{
		FiatAmount: 25,
		Currency:   "USD",
		CardToken:  "tok_chargeDeclined",
	})

	assert.ErrorIs(t, err, ErrCardDeclined)
	wallets.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything)
}

func TestService_TopUp_InvalidAmount(t *testing.T) {
	s := NewService(new(MockTopUpRepo), new(MockWalletRepo), new(MockRates), nil)
	_, err := s.TopUp(context.Background(), 1, Request{FiatAmount: -1, Currency: "USD"})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

// TopUpRepository mock

func (m *MockTopUpRepo) Create(record *models.TopUp) error {
	return m.Called(record).Error(0)
}

func (m *MockTopUpRepo) GetByUser(userID uint, limit, offset int) ([]models.TopUp, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TopUp), args.Error(1)
}

// WalletRepository mock

func (m *MockWalletRepo) Create(wallet *models.Wallet) error {
	return m.Called(wallet).Error(0)
}

func (m *MockWalletRepo) GetByUserID(userID uint) (*models.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepo) Update(wallet *models.Wallet) error {
	return m.Called(wallet).Error(0)
}

func (m *MockWalletRepo) Credit(userID uint, amount int64) error {
	return m.Called(userID, amount).Error(0)
}

func (m *MockWalletRepo) Debit(userID uint, amount int64) error {
	return m.Called(userID, amount).Error(0)
}

// rates.Service mock

func (m *MockRates) Convert(ctx context.Context, fiatAmount float64, currency string) (int64, error) {
	args := m.Called(ctx, fiatAmount, currency)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRates) SetRate(ctx context.Context, currency string, btcPrice float64) error {
	return m.Called(ctx, currency, btcPrice).Error(0)
}

func (m *MockRates) GetRate(ctx context.Context, currency string) (float64, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(float64), args.Error(1)
}
