package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReleaseCommission is the daily per-member commission summary written by
// the cron daemon.
type ReleaseCommission struct {
	ID          uint64          `json:"id" gorm:"primaryKey"`
	MemberID    uint64          `json:"member_id"`
	EarnedTotal decimal.Decimal `json:"earned_total"`
	Friends     uint64          `json:"friends"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
