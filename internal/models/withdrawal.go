package models

import "gorm.io/gorm"

// Withdrawal statuses
const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusCompleted = "completed"
	WithdrawalStatusFailed    = "failed"
)

// Withdrawal records a payout of claimed tips. Total is the sum of the
// included tip amounts, Fee the amount deducted on top; both in sats.
type Withdrawal struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Total    int64  `gorm:"not null"`
	Fee      int64  `gorm:"not null"`
	TipCount int    `gorm:"not null"`
	Invoice  string `gorm:"default:''"`
	Status   string `gorm:"default:'pending'"`
	Tips     []Tip  `gorm:"many2many:withdrawal_tips;"`
}
