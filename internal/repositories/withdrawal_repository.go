package repositories

import (
	"errors"

	"tipjar/internal/models"
)

var ErrWithdrawalNotFound = errors.New("withdrawal not found")

// WithdrawalRepository defines the interface for withdrawal records
type WithdrawalRepository interface {
	Create(w *models.Withdrawal) error
	GetByID(id uint) (*models.Withdrawal, error)
	GetByUser(userID uint, limit, offset int) ([]models.Withdrawal, error)
}
