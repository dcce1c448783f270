package tips

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tipjar/internal/models"
	"tipjar/internal/repositories"
	"tipjar/internal/services/fees"
	"tipjar/internal/services/rates"
	"tipjar/internal/utils"
	"tipjar/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service manages the tip lifecycle: create (funded from the tipper's
// wallet), claim by passphrase, reclaim after expiry.
type Service interface {
	Create(ctx context.Context, tipperID uint, req CreateRequest) (*CreatedTip, error)
	Claim(ctx context.Context, userID uint, claimReference, passphrase string) (*models.Tip, error)
	Reclaim(ctx context.Context, tipperID uint) (int64, error)
	GetByClaimReference(ctx context.Context, ref string) (*models.Tip, error)
	GetByTipper(ctx context.Context, tipperID uint, limit, offset int) ([]models.Tip, error)
}

type service struct {
	tips    repositories.TipRepository
	wallets repositories.WalletRepository
	rates   rates.Service
	tx      repositories.TxRunner
	calc    *fees.Calculator
	cache   Cache
}

// NewService creates a new tip service
func NewService(
	tipRepo repositories.TipRepository,
	walletRepo repositories.WalletRepository,
	rateService rates.Service,
	tx repositories.TxRunner,
	calc *fees.Calculator,
	cache Cache,
) Service {
	if tipRepo == nil {
		panic("tip repository is required")
	}
	if walletRepo == nil {
		panic("wallet repository is required")
	}
	if rateService == nil {
		panic("rate service is required")
	}
	if tx == nil {
		panic("transaction runner is required")
	}
	if calc == nil {
		panic("fee calculator is required")
	}

	return &service{
		tips:    tipRepo,
		wallets: walletRepo,
		rates:   rateService,
		tx:      tx,
		calc:    calc,
		cache:   cache,
	}
}

func (s *service) Create(ctx context.Context, tipperID uint, req CreateRequest) (*CreatedTip, error) {
	amount := req.Amount
	if amount == 0 {
		if req.FiatAmount == 0 || req.FiatCurrency == "" {
			return nil, ErrAmountRequired
		}
		converted, err := s.rates.Convert(ctx, req.FiatAmount, req.FiatCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert fiat amount: %w", err)
		}
		amount = converted
	}
	if err := validation.ValidateTipAmount(amount); err != nil {
		return nil, err
	}

	passphrase, err := utils.GeneratePassphrase()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(utils.NormalizePassphrase(passphrase)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash passphrase: %w", err)
	}

	expiresAt := req.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(DefaultExpiry)
	}

	fee := s.calc.Calculate(amount)

	tip := &models.Tip{
		TipperID:       tipperID,
		Amount:         amount,
		Fee:            fee,
		Status:         models.TipStatusUnfunded,
		Note:           req.Note,
		ClaimReference: uuid.NewString(),
		PassphraseHash: string(hash),
		ExpiresAt:      expiresAt,
	}
	if err := s.tips.Create(tip); err != nil {
		return nil, err
	}

	// Fund and activate together. If funding fails the tip stays
	// unfunded, which holds no money and never surfaces in
	// leaderboards or claims.
	err = s.tx.ExecuteInTransaction(func(tx repositories.Tx) error {
		if err := tx.Wallets.Debit(tipperID, amount+fee); err != nil {
			return err
		}
		tip.Status = models.TipStatusUnclaimed
		return tx.Tips.Update(tip)
	})
	if err != nil {
		tip.Status = models.TipStatusUnfunded
		if errors.Is(err, repositories.ErrInsufficientBalance) {
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to fund tip: %w", err)
	}

	s.invalidate(ctx, tipperID)
	return &CreatedTip{
		Tip:        tip,
		Passphrase: passphrase,
		ClaimURL:   utils.ClaimURL(tip.ClaimReference),
	}, nil
}

func (s *service) Claim(ctx context.Context, userID uint, claimReference, passphrase string) (*models.Tip, error) {
	tip, err := s.tips.GetByClaimReference(claimReference)
	if err != nil {
		if err == repositories.ErrTipNotFound {
			return nil, ErrTipNotFound
		}
		return nil, err
	}

	if tip.TipperID == userID {
		return nil, ErrSelfClaim
	}
	now := time.Now()
	if tip.Expired(now) {
		return nil, ErrTipExpired
	}
	if !tip.Claimable(now) {
		return nil, ErrNotClaimable
	}

	normalized := utils.NormalizePassphrase(passphrase)
	if err := bcrypt.CompareHashAndPassword([]byte(tip.PassphraseHash), []byte(normalized)); err != nil {
		return nil, ErrWrongPassphrase
	}

	tip.Status = models.TipStatusClaimed
	tip.ClaimedByID = &userID
	tip.ClaimedAt = &now

	// The status flip and the wallet credit commit or roll back
	// together; a tip is never left claimed without the credit.
	err = s.tx.ExecuteInTransaction(func(tx repositories.Tx) error {
		if err := tx.Tips.Update(tip); err != nil {
			return fmt.Errorf("failed to claim tip: %w", err)
		}
		if err := tx.Wallets.Credit(userID, tip.Amount); err != nil {
			return fmt.Errorf("failed to credit claimed tip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return tip, nil
}

// Reclaim returns funds of the tipper's expired unclaimed tips to their
// wallet and reports the total refunded.
func (s *service) Reclaim(ctx context.Context, tipperID uint) (int64, error) {
	expired, err := s.tips.GetExpiredUnclaimed(tipperID, time.Now())
	if err != nil {
		return 0, err
	}

	var total int64
	err = s.tx.ExecuteInTransaction(func(tx repositories.Tx) error {
		for i := range expired {
			tip := &expired[i]
			tip.Status = models.TipStatusReclaimed
			if err := tx.Tips.Update(tip); err != nil {
				return fmt.Errorf("failed to reclaim tip %d: %w", tip.ID, err)
			}
			if err := tx.Wallets.Credit(tipperID, tip.Amount); err != nil {
				return fmt.Errorf("failed to refund tip %d: %w", tip.ID, err)
			}
			total += tip.Amount
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if total > 0 {
		s.invalidate(ctx, tipperID)
	}
	return total, nil
}

func (s *service) GetByClaimReference(ctx context.Context, ref string) (*models.Tip, error) {
	tip, err := s.tips.GetByClaimReference(ref)
	if err != nil {
		if err == repositories.ErrTipNotFound {
			return nil, ErrTipNotFound
		}
		return nil, err
	}
	return tip, nil
}

func (s *service) GetByTipper(ctx context.Context, tipperID uint, limit, offset int) ([]models.Tip, error) {
	return s.tips.GetByTipper(tipperID, limit, offset)
}

func (s *service) invalidate(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWallet(ctx, userID); err != nil {
		log.Printf("failed to invalidate wallet cache for user %d: %v", userID, err)
	}
	if err := s.cache.InvalidateLeaderboards(ctx); err != nil {
		log.Printf("failed to invalidate leaderboard cache: %v", err)
	}
}
