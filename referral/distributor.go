package referral

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/refpay/refpay/models"
)

// MaxBonusLevels caps the upward bonus walk. The cap doubles as the cycle
// guard for malformed referrer chains.
const MaxBonusLevels = 6

var (
	// DirectBonusRate is paid to the depositor's direct referrer.
	DirectBonusRate = decimal.NewFromFloat(0.10)
	// UplineBonusRate is paid to each ancestor on levels 2 through MaxBonusLevels.
	UplineBonusRate = decimal.NewFromFloat(0.02)
)

// BonusForLevel computes the bonus for one ancestor level from the gross
// amount, rounded to the smallest currency unit. Every level is computed
// from the gross, never from a running remainder.
func BonusForLevel(amount decimal.Decimal, level int) decimal.Decimal {
	if level < 1 || level > MaxBonusLevels {
		return decimal.Zero
	}

	rate := UplineBonusRate
	if level == 1 {
		rate = DirectBonusRate
	}

	return amount.Mul(rate).Round(models.Precision)
}

type DepositResult struct {
	Member           *models.Member
	Transaction      *models.Transaction
	TotalDistributed decimal.Decimal
}

// Distributor applies a deposit: bonuses up the referral chain, the net
// credit to the depositor, and one ledger record. The whole mutation set
// runs in a single store transaction, so a failed save aborts the deposit
// with no partial distribution.
type Distributor struct {
	store Store
}

func NewDistributor(store Store) *Distributor {
	return &Distributor{store: store}
}

type earnedBonus struct {
	member *models.Member
	amount decimal.Decimal
	level  int32
}

func (d *Distributor) ProcessDeposit(uid string, amount decimal.Decimal, method string, tid string) (*DepositResult, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *DepositResult

	err := d.store.Atomically(func(s Store) error {
		member, err := s.FindMemberByUID(uid)
		if err != nil {
			return err
		}

		bonuses, err := walkAncestors(s, member, amount)
		if err != nil {
			return err
		}

		totalBonus := decimal.Zero
		for _, bonus := range bonuses {
			if err := bonus.member.PlusWallet(bonus.amount); err != nil {
				return err
			}
			if err := s.SaveMember(bonus.member); err != nil {
				return err
			}

			totalBonus = totalBonus.Add(bonus.amount)
		}

		netAmount := amount.Sub(totalBonus)
		if err := member.RecordDeposit(amount, netAmount); err != nil {
			return err
		}
		if err := s.SaveMember(member); err != nil {
			return err
		}

		transaction := &models.Transaction{
			MemberID:   member.ID,
			Amount:     amount,
			Commission: totalBonus,
			NetAmount:  netAmount,
			Method:     method,
			TID:        sql.NullString{String: tid, Valid: len(tid) > 0},
		}
		if err := s.CreateTransaction(transaction); err != nil {
			return err
		}

		for _, bonus := range bonuses {
			commission := &models.Commission{
				MemberID:      bonus.member.ID,
				FriendUID:     member.UID,
				EarnAmount:    bonus.amount,
				Level:         bonus.level,
				TransactionID: transaction.ID,
			}
			if err := s.CreateCommission(commission); err != nil {
				return err
			}
		}

		result = &DepositResult{
			Member:           member,
			Transaction:      transaction,
			TotalDistributed: totalBonus,
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// walkAncestors resolves up to MaxBonusLevels ancestors of the depositor and
// computes their bonuses. An absent or unresolvable referrer ends the walk;
// any other store failure aborts it.
func walkAncestors(s Store, member *models.Member, amount decimal.Decimal) ([]*earnedBonus, error) {
	bonuses := make([]*earnedBonus, 0, MaxBonusLevels)
	loaded := map[string]*models.Member{member.UID: member}

	current := member
	for level := 1; level <= MaxBonusLevels; level++ {
		if !current.HavingReferrer() {
			break
		}

		referrer, ok := loaded[current.ReferralUID.String]
		if !ok {
			var err error
			referrer, err = s.FindMemberByUID(current.ReferralUID.String)
			if errors.Is(err, ErrMemberNotFound) {
				break
			}
			if err != nil {
				return nil, err
			}

			// A cyclic chain revisits a member; reuse the loaded instance so
			// both credits land on the same record.
			loaded[referrer.UID] = referrer
		}

		// A tiny deposit can round a level's bonus down to zero; the level
		// still counts against the cap but earns nothing.
		if bonus := BonusForLevel(amount, level); bonus.IsPositive() {
			bonuses = append(bonuses, &earnedBonus{
				member: referrer,
				amount: bonus,
				level:  int32(level),
			})
		}

		current = referrer
	}

	return bonuses, nil
}
