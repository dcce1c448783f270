package tips

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tipjar/internal/models"
	"tipjar/internal/repositories"
	"tipjar/internal/services/fees"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockTipRepo struct {
	mock.Mock
}

type MockWalletRepo struct {
	mock.Mock
}

type MockRates struct {
	mock.Mock
}

// stubTxRunner hands the mocks to the callback and records whether the
// callback failed, i.e. whether a real transaction would have rolled
// every write back.
type stubTxRunner struct {
	tx         repositories.Tx
	rolledBack bool
}

func (s *stubTxRunner) ExecuteInTransaction(fn func(repositories.Tx) error) error {
	if err := fn(s.tx); err != nil {
		s.rolledBack = true
		return err
	}
	return nil
}

func newTestService(tips *MockTipRepo, wallets *MockWalletRepo, rateSvc *MockRates) (Service, *stubTxRunner) {
	runner := &stubTxRunner{tx: repositories.Tx{Tips: tips, Wallets: wallets}}
	calc := fees.NewCalculator(fees.Config{MinimumFee: 10, FeePercent: 1})
	return NewService(tips, wallets, rateSvc, runner, calc, nil), runner
}

func TestService_Create(t *testing.T) {
	t.Run("sats amount", func(t *testing.T) {
		tipRepo := new(MockTipRepo)
		walletRepo := new(MockWalletRepo)
		rateSvc := new(MockRates)

		tipRepo.On("Create", mock.Anything).Return(nil)
		// Tipper funds amount plus the 1%/min-10 fee on 5000 sats.
		walletRepo.On("Debit", uint(1), int64(5051)).Return(nil)
		tipRepo.On("Update", mock.Anything).Return(nil)

		s, _ := newTestService(tipRepo, walletRepo, rateSvc)
		created, err := s.Create(context.Background(), 1, CreateRequest{Amount: 5000, Note: "great talk"})

		require.NoError(t, err)
		assert.Equal(t, int64(5000), created.Tip.Amount)
		assert.Equal(t, int64(51), created.Tip.Fee)
		assert.Equal(t, models.TipStatusUnclaimed, created.Tip.Status)
		assert.NotEmpty(t, created.Tip.ClaimReference)
		assert.Len(t, strings.Fields(created.Passphrase), 3)
		assert.Contains(t, created.ClaimURL, created.Tip.ClaimReference)
		assert.False(t, created.Tip.ExpiresAt.IsZero())

		tipRepo.AssertExpectations(t)
		walletRepo.AssertExpectations(t)
		rateSvc.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fiat amount is converted", func(t *testing.T) {
		tipRepo := new(MockTipRepo)
		walletRepo := new(MockWalletRepo)
		rateSvc := new(MockRates)

		rateSvc.On("Convert", mock.Anything, 10.0, "USD").Return(int64(20_000), nil)
		tipRepo.On("Create", mock.Anything).Return(nil)
		walletRepo.On("Debit", uint(1), int64(20_202)).Return(nil)
		tipRepo.On("Update", mock.Anything).Return(nil)

		s, _ := newTestService(tipRepo, walletRepo, rateSvc)
		created, err := s.Create(context.Background(), 1, CreateRequest{FiatAmount: 10, FiatCurrency: "USD"})

		require.NoError(t, err)
		assert.Equal(t, int64(20_000), created.Tip.Amount)
		assert.Equal(t, int64(202), created.Tip.Fee)
		rateSvc.AssertExpectations(t)
	})

	t.Run("no amount at all", func(t *testing.T) {
		s, _ := newTestService(new(MockTipRepo), new(MockWalletRepo), new(MockRates))
		_, err := s.Create(context.Background(), 1, CreateRequest{})
		assert.ErrorIs(t, err, ErrAmountRequired)
	})

	t.Run("insufficient wallet balance leaves the tip unfunded", func(t *testing.T) {
		tipRepo := new(MockTipRepo)
		walletRepo := new(MockWalletRepo)

		tipRepo.On("Create", mock.Anything).Return(nil)
		walletRepo.On("Debit", uint(1), int64(5051)).Return(repositories.ErrInsufficientBalance)

		s, runner := newTestService(tipRepo, walletRepo, new(MockRates))
		_, err := s.Create(context.Background(), 1, CreateRequest{Amount: 5000})

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, runner.rolledBack)
		tipRepo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func claimableTip(t *testing.T, tipperID uint, passphrase string) *models.Tip {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Tip{
		TipperID:       tipperID,
		Amount:         2100,
		Status:         models.TipStatusUnclaimed,
		ClaimReference: "ref-1",
		PassphraseHash: string(hash),
		ExpiresAt:      time.Now().Add(time.Hour),
	}
}

func TestService_Claim(t *testing.T) {
	t.Run("successful claim", func(t *testing.T) {
		tipRepo := new(MockTipRepo)
		walletRepo := new(MockWalletRepo)

		tip := claimableTip(t, 1, "gold fish drum")
		tipRepo.On("GetByClaimReference", "ref-1").Return(tip, nil)
		tipRepo.On("Update", mock.Anything).Return(nil)
		walletRepo.On("Credit", uint(2), int64(2100)).Return(nil)

		s, _ := newTestService(tipRepo, walletRepo, new(MockRates))
		claimed, err := s.Claim(context.Background(), 2, "ref-1", "  GOLD Fish drum ")

		require.NoError(t, err)
		assert.Equal(t, models.TipStatusClaimed, claimed.Status)
		require.NotNil(t, claimed.ClaimedByID)
		assert.Equal(t, uint(2), *claimed.ClaimedByID)
		walletRepo.AssertExpectations(t)
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		tipRepo := new(MockTipRepo)
		walletRepo := new(MockWalletRepo)

		tipRepo.On("GetByClaimReference", "ref-1").Return(claimableTip(t, 1, "gold fish drum"), nil)

		s, _ := newTestService(tipRepo, walletRepo, new(MockRates))
		_, err := s.Claim(context.Background(), 2, "ref-1", "wrong words here")

		assert.ErrorIs(t, err, ErrWrongPassphrase)
		walletRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything)
	})

	t.Run("tipper cannot claim own tip", func(t *testing.T) {
		tipRepo := new(MockTipRepo)
		tipRepo.On("GetByClaimReference", "ref-1").Return(claimableTip(t, 1, "gold fish drum"), nil)

		s, _ := newTestService(tipRepo, new(MockWalletRepo), new(MockRates))
		_, err := s.Claim(context.Background(), 1, "ref-1", "gold fish drum")

		assert.ErrorIs(t, err, ErrSelfClaim)
	})

	t.Run("expired tip", func(t *testing.T) {
		tipRepo := new(MockTipRepo)
		tip := claimableTip(t, 1, "gold fish drum")
		tip.ExpiresAt = time.Now().Add(-time.Hour)
		tipRepo.On("GetByClaimReference", "ref-1").Return(tip, nil)

		s, _ := newTestService(tipRepo, new(MockWalletRepo), new(MockRates))
		_, err := s.Claim(context.Background(), 2, "ref-1", "gold fish drum")

		assert.ErrorIs(t, err, ErrTipExpired)
	})

	t.Run("credit failure rolls the claim back", func(t *testing.T) {
		tipRepo := new(MockTipRepo)
		walletRepo := new(MockWalletRepo)

		tip := claimableTip(t, 1, "gold fish drum")
		tipRepo.On("GetByClaimReference", "ref-1").Return(tip, nil)
		tipRepo.On("Update", mock.Anything).Return(nil)
		walletRepo.On("Credit", uint(2), int64(2100)).Return(errors.New("db down"))

		s, runner := newTestService(tipRepo, walletRepo, new(MockRates))
		_, err := s.Claim(context.Background(), 2, "ref-1", "gold fish drum")

		// A tip must never stay claimed while the wallet was not
		// credited; both writes are discarded together.
		assert.Error(t, err)
		assert.True(t, runner.rolledBack)
	})
}

func TestService_Reclaim(t *testing.T) {
	tipRepo := new(MockTipRepo)
	walletRepo := new(MockWalletRepo)

	expired := []models.Tip{
		{TipperID: 1, Amount: 700, Status: models.TipStatusUnclaimed},
		{TipperID: 1, Amount: 300, Status: models.TipStatusUnclaimed},
	}
	tipRepo.On("GetExpiredUnclaimed", uint(1), mock.Anything).Return(expired, nil)
	tipRepo.On("Update", mock.Anything).Return(nil).Times(2)
	walletRepo.On("Credit", uint(1), int64(700)).Return(nil)
	walletRepo.On("Credit", uint(1), int64(300)).Return(nil)

	s, _ := newTestService(tipRepo, walletRepo, new(MockRates))
	total, err := s.Reclaim(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), total)
	tipRepo.AssertExpectations(t)
	walletRepo.AssertExpectations(t)
}

func TestService_Reclaim_RollsBackOnRefundFailure(t *testing.T) {
	tipRepo := new(MockTipRepo)
	walletRepo := new(MockWalletRepo)

	expired := []models.Tip{
		{TipperID: 1, Amount: 700, Status: models.TipStatusUnclaimed},
		{TipperID: 1, Amount: 300, Status: models.TipStatusUnclaimed},
	}
	tipRepo.On("GetExpiredUnclaimed", uint(1), mock.Anything).Return(expired, nil)
	tipRepo.On("Update", mock.Anything).Return(nil)
	walletRepo.On("Credit", uint(1), int64(700)).Return(nil)
	walletRepo.On("Credit", uint(1), int64(300)).Return(errors.New("db down"))

	s, runner := newTestService(tipRepo, walletRepo, new(MockRates))
	total, err := s.Reclaim(context.Background(), 1)

	assert.Error(t, err)
	assert.Zero(t, total, "a rolled back reclaim refunds nothing")
	assert.True(t, runner.rolledBack)
}

// TipRepository mock

func (m *MockTipRepo) Create(tip *models.Tip) error {
	return m.Called(tip).Error(0)
}

func (m *MockTipRepo) GetByID(id uint) (*models.Tip, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tip), args.Error(1)
}

func (m *MockTipRepo) GetByClaimReference(ref string) (*models.Tip, error) {
	args := m.Called(ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tip), args.Error(1)
}

func (m *MockTipRepo) Update(tip *models.Tip) error {
	return m.Called(tip).Error(0)
}

func (m *MockTipRepo) GetByTipper(tipperID uint, limit, offset int) ([]models.Tip, error) {
	args := m.Called(tipperID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tip), args.Error(1)
}

func (m *MockTipRepo) GetClaimedByUser(userID uint) ([]models.Tip, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tip), args.Error(1)
}

func (m *MockTipRepo) GetExpiredUnclaimed(tipperID uint, now time.Time) ([]models.Tip, error) {
	args := m.Called(tipperID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tip), args.Error(1)
}

func (m *MockTipRepo) MarkWithdrawn(tipIDs []uint, at time.Time) error {
	return m.Called(tipIDs, at).Error(0)
}

func (m *MockTipRepo) TotalsByTipper(start, end time.Time, limit int) ([]repositories.TipperTotal, error) {
	args := m.Called(start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.TipperTotal), args.Error(1)
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
