package helpers

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
)

type CreateDepositParams struct {
	Amount decimal.Decimal `json:"amount" form:"amount" validate:"required|VaildateAmount"`
	Method string          `json:"method" form:"method" validate:"required"`
	TID    string          `json:"tid" form:"tid"`
}

func (p CreateDepositParams) Messages() map[string]string {
	return validate.MS{
		"required":       "account.deposit.missing_{field}",
		"VaildateAmount": "account.deposit.non_positive_amount",
	}
}

func (p CreateDepositParams) VaildateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}
