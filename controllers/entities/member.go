package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/refpay/refpay/models"
)

type MemberEntity struct {
	UID           string          `json:"uid"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	ReferralCode  string          `json:"referral_code"`
	ReferralUID   string          `json:"referral_uid,omitempty"`
	Wallet        decimal.Decimal `json:"wallet"`
	TotalDeposits decimal.Decimal `json:"total_deposits"`
	CreatedAt     time.Time       `json:"created_at"`
}

func BuildMember(member *models.Member) *MemberEntity {
	return &MemberEntity{
		UID:           member.UID,
		Name:          member.Name,
		Email:         member.Email,
		ReferralCode:  member.ReferralCode,
		ReferralUID:   member.ReferralUID.String,
		Wallet:        member.Wallet,
		TotalDeposits: member.TotalDeposits,
		CreatedAt:     member.CreatedAt,
	}
}
