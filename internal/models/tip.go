package models

import (
	"time"

	"gorm.io/gorm"
)

// Tip statuses
const (
	TipStatusUnfunded  = "unfunded"
	TipStatusUnclaimed = "unclaimed"
	TipStatusClaimed   = "claimed"
	TipStatusWithdrawn = "withdrawn"
	TipStatusReclaimed = "reclaimed"
)

// Tip is a claimable gift of satoshis. Amount and Fee are in sats.
// The claim passphrase is stored as a bcrypt hash; the plaintext is
// shown to the tipper exactly once.
type Tip struct {
	gorm.Model
	TipperID       uint   `gorm:"index;not null"`
	ClaimedByID    *uint  `gorm:"index;default:null"`
	Amount         int64  `gorm:"not null"`
	Fee            int64  `gorm:"default:0"`
	Currency       string `gorm:"default:'SAT'"`
	Status         string `gorm:"default:'unfunded';index"`
	Note           string
	ClaimReference string `gorm:"uniqueIndex;not null"`
	PassphraseHash string `gorm:"not null"`
	ExpiresAt      time.Time
	ClaimedAt      *time.Time
	WithdrawnAt    *time.Time
}

// Expired reports whether the tip can no longer be claimed.
func (t *Tip) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// Claimable reports whether the tip is funded, unclaimed and unexpired.
func (t *Tip) Claimable(now time.Time) bool {
	return t.Status == TipStatusUnclaimed && !t.Expired(now)
}
