package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/refpay/refpay/models"
)

type CommissionEntity struct {
	ID            uint64          `json:"id"`
	FriendUID     string          `json:"friend_uid"`
	EarnAmount    decimal.Decimal `json:"earn_amount"`
	Level         int32           `json:"level"`
	TransactionID uint64          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

func BuildCommission(commission *models.Commission) *CommissionEntity {
	return &CommissionEntity{
		ID:            commission.ID,
		FriendUID:     commission.FriendUID,
		EarnAmount:    commission.EarnAmount,
		Level:         commission.Level,
		TransactionID: commission.TransactionID,
		CreatedAt:     commission.CreatedAt,
	}
}
