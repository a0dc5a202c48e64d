package queries

import "github.com/gookit/validate"

type CommissionQueries struct {
	Limit int `query:"limit" validate:"uint"`
	Page  int `query:"page" validate:"uint"`
}

func (t CommissionQueries) Messages() map[string]string {
	return validate.MS{
		"uint": "referral.commission.invalid_{field}",
	}
}
