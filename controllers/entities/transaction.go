package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/refpay/refpay/models"
)

type TransactionEntity struct {
	ID         uint64          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	NetAmount  decimal.Decimal `json:"net_amount"`
	Method     string          `json:"method"`
	TID        string          `json:"tid,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func BuildTransaction(transaction *models.Transaction) *TransactionEntity {
	return &TransactionEntity{
		ID:         transaction.ID,
		Amount:     transaction.Amount,
		Commission: transaction.Commission,
		NetAmount:  transaction.NetAmount,
		Method:     transaction.Method,
		TID:        transaction.TID.String,
		CreatedAt:  transaction.CreatedAt,
	}
}
