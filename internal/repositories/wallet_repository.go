package repositories

import (
	"errors"

	"tipjar/internal/models"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrDuplicateWallet     = errors.New("wallet already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// WalletRepository defines the interface for wallet-related database operations
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByUserID(userID uint) (*models.Wallet, error)
	Update(wallet *models.Wallet) error

	// Credit and Debit adjust the balance atomically. Debit fails with
	// ErrInsufficientBalance when the balance would go negative.
	Credit(userID uint, amount int64) error
	Debit(userID uint, amount int64) error
}
