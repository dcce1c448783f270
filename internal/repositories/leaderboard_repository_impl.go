package repositories

import (
	"fmt"

	"tipjar/internal/models"

	"gorm.io/gorm"
)

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Create(lb *models.Leaderboard) error {
	if err := r.db.Create(lb).Error; err != nil {
		return fmt.Errorf("failed to create leaderboard: %w", err)
	}
	return nil
}

func (r *leaderboardRepository) GetByID(id uint) (*models.Leaderboard, error) {
	var lb models.Leaderboard
	if err := r.db.First(&lb, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrLeaderboardNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return &lb, nil
}

func (r *leaderboardRepository) Update(lb *models.Leaderboard) error {
	if err := r.db.Save(lb).Error; err != nil {
		return fmt.Errorf("failed to update leaderboard: %w", err)
	}
	return nil
}

func (r *leaderboardRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Leaderboard{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete leaderboard: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLeaderboardNotFound
	}
	return nil
}

func (r *leaderboardRepository) ListPublic(limit, offset int) ([]models.Leaderboard, error) {
	var lbs []models.Leaderboard
	err := r.db.Where("public = ?", true).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&lbs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboards: %w", err)
	}
	return lbs, nil
}
