package models

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Member struct {
	ID            uint64          `json:"id" gorm:"primaryKey"`
	UID           string          `json:"uid" gorm:"uniqueIndex"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          string          `json:"role"`
	State         string          `json:"state"`
	ReferralCode  string          `json:"referral_code" gorm:"uniqueIndex"`
	ReferralUID   sql.NullString  `json:"referral_uid"`
	Wallet        decimal.Decimal `json:"wallet" validate:"ValidateWallet"`
	TotalDeposits decimal.Decimal `json:"total_deposits"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func GenerateReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
}

func (m Member) ValidateWallet(Wallet decimal.Decimal) bool {
	return Wallet.GreaterThanOrEqual(decimal.Zero)
}

func (m *Member) HavingReferrer() bool {
	return m.ReferralUID.Valid && len(m.ReferralUID.String) > 0
}

// PlusWallet mutates the in-memory balance only; persisting the member is
// the caller's responsibility so the mutation stays inside its transaction.
func (m *Member) PlusWallet(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("cannot add funds (uid: " + m.UID + ", amount: " + amount.String() + ", wallet: " + m.Wallet.String() + ")")
	}

	m.Wallet = m.Wallet.Add(amount)
	return nil
}

// RecordDeposit credits the net amount and bumps the gross deposit total.
func (m *Member) RecordDeposit(gross, net decimal.Decimal) error {
	if net.IsPositive() {
		if err := m.PlusWallet(net); err != nil {
			return err
		}
	}

	m.TotalDeposits = m.TotalDeposits.Add(gross)
	return nil
}
