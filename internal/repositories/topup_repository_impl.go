package repositories

import (
	"fmt"

	"tipjar/internal/models"

	"gorm.io/gorm"
)

type topUpRepository struct {
	db *gorm.DB
}

func NewTopUpRepository(db *gorm.DB) TopUpRepository {
	return &topUpRepository{db: db}
}

func (r *topUpRepository) Create(t *models.TopUp) error {
	if err := r.db.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create top-up: %w", err)
	}
	return nil
}

func (r *topUpRepository) GetByUser(userID uint, limit, offset int) ([]models.TopUp, error) {
	var topups []models.TopUp
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&topups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list top-ups: %w", err)
	}
	return topups, nil
}
