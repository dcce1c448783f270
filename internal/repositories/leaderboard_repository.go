package repositories

import (
	"errors"

	"tipjar/internal/models"
)

var ErrLeaderboardNotFound = errors.New("leaderboard not found")

// LeaderboardRepository defines the interface for leaderboard records
type LeaderboardRepository interface {
	Create(lb *models.Leaderboard) error
	GetByID(id uint) (*models.Leaderboard, error)
	Update(lb *models.Leaderboard) error
	Delete(id uint) error
	ListPublic(limit, offset int) ([]models.Leaderboard, error)
}
