package types

import "github.com/shopspring/decimal"

// DepositPayloadMessage is the wire shape of a deposit submitted through the
// queue instead of the HTTP API.
type DepositPayloadMessage struct {
	UID    string          `json:"uid"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	TID    string          `json:"tid"`
}

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)
