package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/mq_client"
)

// Transaction is the append-only record of one processed deposit.
// Amount always equals Commission + NetAmount.
type Transaction struct {
	ID         uint64          `json:"id" gorm:"primaryKey"`
	MemberID   uint64          `json:"member_id"`
	Amount     decimal.Decimal `json:"amount" validate:"ValidateAmount"`
	Commission decimal.Decimal `json:"commission"`
	NetAmount  decimal.Decimal `json:"net_amount"`
	Method     string          `json:"method"`
	TID        sql.NullString  `json:"tid"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (t Transaction) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

func (t *Transaction) Member() *Member {
	member := &Member{}

	config.DataBase.First(&member, "id = ?", t.MemberID)

	return member
}

func (t *Transaction) TriggerEvent() {
	member := t.Member()
	payload_message, _ := json.Marshal(t.ToJSON())

	mq_client.EnqueueEvent("private", member.UID, "deposit", payload_message)
}

func (t *Transaction) WriteToInflux() {
	amount, _ := t.Amount.Float64()
	commission, _ := t.Commission.Float64()
	net_amount, _ := t.NetAmount.Float64()

	tags := map[string]string{"method": t.Method}
	fields := map[string]interface{}{
		"id":         int64(t.ID),
		"member_id":  int64(t.MemberID),
		"amount":     amount,
		"commission": commission,
		"net_amount": net_amount,
	}

	config.InfluxDB.NewPoint("deposits", tags, fields)
}

type TransactionJSON struct {
	ID         uint64          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	NetAmount  decimal.Decimal `json:"net_amount"`
	Method     string          `json:"method"`
	TID        string          `json:"tid,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (t *Transaction) ToJSON() TransactionJSON {
	return TransactionJSON{
		ID:         t.ID,
		Amount:     t.Amount,
		Commission: t.Commission,
		NetAmount:  t.NetAmount,
		Method:     t.Method,
		TID:        t.TID.String,
		CreatedAt:  t.CreatedAt,
	}
}
