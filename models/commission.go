package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission is the per-ancestor breakdown of one deposit's distribution.
// Level 1 is the depositor's direct referrer.
type Commission struct {
	ID            uint64          `json:"id" gorm:"primaryKey"`
	MemberID      uint64          `json:"member_id"`
	FriendUID     string          `json:"friend_uid"`
	EarnAmount    decimal.Decimal `json:"earn_amount"`
	Level         int32           `json:"level"`
	TransactionID uint64          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
