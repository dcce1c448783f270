package models

import (
	"time"

	"gorm.io/gorm"
)

// Leaderboard ranks tippers by total funded tips within a period.
type Leaderboard struct {
	gorm.Model
	CreatorID uint   `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	StartsAt  time.Time
	EndsAt    time.Time
	Public    bool `gorm:"default:true"`
}

// LeaderboardEntry is a computed ranking row, not a persisted table.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	TotalAmount int64  `json:"total_amount"`
	TipCount    int    `json:"tip_count"`
}
