package repositories

import (
	"errors"
	"time"

	"tipjar/internal/models"
)

var (
	ErrTipNotFound = errors.New("tip not found")
)

// TipRepository defines the interface for tip-related database operations
type TipRepository interface {
	Create(tip *models.Tip) error
	GetByID(id uint) (*models.Tip, error)
	GetByClaimReference(ref string) (*models.Tip, error)
	Update(tip *models.Tip) error

	GetByTipper(tipperID uint, limit, offset int) ([]models.Tip, error)
	GetClaimedByUser(userID uint) ([]models.Tip, error)
	GetExpiredUnclaimed(tipperID uint, now time.Time) ([]models.Tip, error)

	// MarkWithdrawn flips a set of claimed tips to withdrawn inside the
	// caller's transaction.
	MarkWithdrawn(tipIDs []uint, at time.Time) error

	// TotalsByTipper aggregates funded tips per tipper within a period,
	// largest totals first.
	TotalsByTipper(start, end time.Time, limit int) ([]TipperTotal, error)
}

// TipperTotal is an aggregation row used for leaderboards.
type TipperTotal struct {
	TipperID    uint
	Name        string
	TotalAmount int64
	TipCount    int
}
