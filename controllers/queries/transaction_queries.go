package queries

import (
	"github.com/gookit/validate"

	"github.com/refpay/refpay/types"
)

type TransactionQueries struct {
	Limit   int           `query:"limit" validate:"uint"`
	Page    int           `query:"page" validate:"uint"`
	OrderBy types.OrderBy `query:"order_by" validate:"VaildateOrderBy"`
}

func (t TransactionQueries) Messages() map[string]string {
	return validate.MS{
		"uint":            "account.transaction.invalid_{field}",
		"VaildateOrderBy": "account.transaction.invalid_order_by",
	}
}

func (t TransactionQueries) VaildateOrderBy(OrderBy types.OrderBy) bool {
	return len(OrderBy) == 0 || OrderBy == types.OrderByAsc || OrderBy == types.OrderByDesc
}
