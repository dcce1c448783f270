package repositories

import (
	"fmt"
	"time"

	"tipjar/internal/models"

	"gorm.io/gorm"
)

type tipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) TipRepository {
	return &tipRepository{db: db}
}

func (r *tipRepository) Create(tip *models.Tip) error {
	if err := r.db.Create(tip).Error; err != nil {
		return fmt.Errorf("failed to create tip: %w", err)
	}
	return nil
}

func (r *tipRepository) GetByID(id uint) (*models.Tip, error) {
	var tip models.Tip
	if err := r.db.First(&tip, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTipNotFound
		}
		return nil, fmt.Errorf("failed to get tip: %w", err)
	}
	return &tip, nil
}

func (r *tipRepository) GetByClaimReference(ref string) (*models.Tip, error) {
	var tip models.Tip
	if err := r.db.Where("claim_reference = ?", ref).First(&tip).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTipNotFound
		}
		return nil, fmt.Errorf("failed to get tip: %w", err)
	}
	return &tip, nil
}

func (r *tipRepository) Update(tip *models.Tip) error {
	if err := r.db.Save(tip).Error; err != nil {
		return fmt.Errorf("failed to update tip: %w", err)
	}
	return nil
}

func (r *tipRepository) GetByTipper(tipperID uint, limit, offset int) ([]models.Tip, error) {
	var tips []models.Tip
	err := r.db.Where("tipper_id = ?", tipperID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&tips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}
	return tips, nil
}

func (r *tipRepository) GetClaimedByUser(userID uint) ([]models.Tip, error) {
	var tips []models.Tip
	err := r.db.Where("claimed_by_id = ? AND status = ?", userID, models.TipStatusClaimed).
		Find(&tips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list claimed tips: %w", err)
	}
	return tips, nil
}

func (r *tipRepository) GetExpiredUnclaimed(tipperID uint, now time.Time) ([]models.Tip, error) {
	var tips []models.Tip
	err := r.db.Where("tipper_id = ? AND status = ? AND expires_at < ?",
		tipperID, models.TipStatusUnclaimed, now).
		Find(&tips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired tips: %w", err)
	}
	return tips, nil
}

func (r *tipRepository) MarkWithdrawn(tipIDs []uint, at time.Time) error {
	if len(tipIDs) == 0 {
		return nil
	}
	result := r.db.Model(&models.Tip{}).
		Where("id IN ? AND status = ?", tipIDs, models.TipStatusClaimed).
		Updates(map[string]interface{}{
			"status":       models.TipStatusWithdrawn,
			"withdrawn_at": at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark tips withdrawn: %w", result.Error)
	}
	if result.RowsAffected != int64(len(tipIDs)) {
		return fmt.Errorf("expected %d tips to withdraw, updated %d", len(tipIDs), result.RowsAffected)
	}
	return nil
}

func (r *tipRepository) TotalsByTipper(start, end time.Time, limit int) ([]TipperTotal, error) {
	var totals []TipperTotal
	err := r.db.Model(&models.Tip{}).
		Select("tips.tipper_id, users.name, SUM(tips.amount) AS total_amount, COUNT(*) AS tip_count").
		Joins("JOIN users ON users.id = tips.tipper_id").
		Where("tips.status <> ? AND tips.created_at BETWEEN ? AND ?",
			models.TipStatusUnfunded, start, end).
		Group("tips.tipper_id, users.name").
		Order("total_amount DESC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tipper totals: %w", err)
	}
	return totals, nil
}
