package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tipjar/internal/models"
	"tipjar/internal/repositories"
	"tipjar/internal/services/fees"
)

// Service assembles withdrawals from a user's claimed tips.
type Service interface {
	Preview(ctx context.Context, userID uint) (*Preview, error)
	Withdraw(ctx context.Context, userID uint, invoice string) (*models.Withdrawal, error)
	History(ctx context.Context, userID uint, limit, offset int) ([]models.Withdrawal, error)
}

type service struct {
	tips        repositories.TipRepository
	wallets     repositories.WalletRepository
	withdrawals repositories.WithdrawalRepository
	tx          repositories.TxRunner
	cache       WalletCache
	calc        *fees.Calculator
	limits      Limits
}

// NewService creates a new withdrawal service
func NewService(
	tips repositories.TipRepository,
	wallets repositories.WalletRepository,
	withdrawals repositories.WithdrawalRepository,
	tx repositories.TxRunner,
	cache WalletCache,
	calc *fees.Calculator,
	limits Limits,
) Service {
	if tips == nil {
		panic("tip repository is required")
	}
	if wallets == nil {
		panic("wallet repository is required")
	}
	if withdrawals == nil {
		panic("withdrawal repository is required")
	}
	if tx == nil {
		panic("transaction runner is required")
	}
	if calc == nil {
		panic("fee calculator is required")
	}

	return &service{
		tips:        tips,
		wallets:     wallets,
		withdrawals: withdrawals,
		tx:          tx,
		cache:       cache,
		calc:        calc,
		limits:      limits,
	}
}

func (s *service) Preview(ctx context.Context, userID uint) (*Preview, error) {
	selected, total, err := s.selectTips(userID)
	if err != nil {
		return nil, err
	}

	fee := s.calc.Calculate(total)
	if fee >= total {
		return nil, ErrFeeExceedsTotal
	}

	return &Preview{
		Tips:   selected,
		Total:  total,
		Fee:    fee,
		Payout: total - fee,
	}, nil
}

func (s *service) Withdraw(ctx context.Context, userID uint, invoice string) (*models.Withdrawal, error) {
	selected, total, err := s.selectTips(userID)
	if err != nil {
		return nil, err
	}

	fee := s.calc.Calculate(total)
	if fee >= total {
		return nil, ErrFeeExceedsTotal
	}

	tipIDs := make([]uint, len(selected))
	for i, tip := range selected {
		tipIDs[i] = tip.ID
	}

	w := &models.Withdrawal{
		UserID:   userID,
		Total:    total,
		Fee:      fee,
		TipCount: len(selected),
		Invoice:  invoice,
		Status:   models.WithdrawalStatusCompleted,
		Tips:     selected,
	}

	// Claimed tips were credited to the wallet at claim time, so the
	// debit covers the full selected total; the fee comes out of the
	// payout, not the balance. Debit, tip status flips, and the
	// withdrawal record commit or roll back together.
	err = s.tx.ExecuteInTransaction(func(tx repositories.Tx) error {
		if err := tx.Wallets.Debit(userID, total); err != nil {
			return err
		}
		if err := tx.Tips.MarkWithdrawn(tipIDs, time.Now()); err != nil {
			return fmt.Errorf("failed to mark tips withdrawn: %w", err)
		}
		if err := tx.Withdrawals.Create(w); err != nil {
			return fmt.Errorf("failed to record withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientBalance) {
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateWallet(ctx, userID); err != nil {
			log.Printf("failed to invalidate wallet cache for user %d: %v", userID, err)
		}
	}
	return w, nil
}

func (s *service) History(ctx context.Context, userID uint, limit, offset int) ([]models.Withdrawal, error) {
	return s.withdrawals.GetByUser(userID, limit, offset)
}

func (s *service) selectTips(userID uint) ([]models.Tip, int64, error) {
	claimed, err := s.tips.GetClaimedByUser(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load claimed tips: %w", err)
	}

	selected := LimitTips(claimed, s.limits)
	if len(selected) == 0 {
		return nil, 0, ErrNothingToWithdraw
	}

	var total int64
	for _, tip := range selected {
		total += tip.Amount
	}
	return selected, total, nil
}
