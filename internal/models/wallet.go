package models

import (
	"time"

	"gorm.io/gorm"
)

// Wallet balances are denominated in satoshis.
type Wallet struct {
	ID           uint   `gorm:"primarykey"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	Balance      int64  `gorm:"default:0"`
	Currency     string `gorm:"default:'SAT'"`
	Status       string `gorm:"default:'active'"`
	StatusReason string `gorm:"default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Balance always starts at 0
	w.Balance = 0
	return nil
}
