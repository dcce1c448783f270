package repositories

import "tipjar/internal/models"

// TopUpRepository defines the interface for top-up records
type TopUpRepository interface {
	Create(t *models.TopUp) error
	GetByUser(userID uint, limit, offset int) ([]models.TopUp, error)
}
