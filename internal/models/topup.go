package models

import "gorm.io/gorm"

// TopUp records a fiat card payment that credited a wallet with sats.
type TopUp struct {
	gorm.Model
	UserID         uint    `gorm:"index;not null"`
	FiatAmount     float64 `gorm:"not null"`
	FiatCurrency   string  `gorm:"not null"`
	AmountSats     int64   `gorm:"not null"`
	StripeChargeID string  `gorm:"uniqueIndex;not null"`
	Status         string  `gorm:"default:'succeeded'"`
}
