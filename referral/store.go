package referral

import (
	"errors"

	"github.com/refpay/refpay/models"
)

var (
	// ErrMemberNotFound is returned when the initiating identifier does not
	// resolve. A referrer or child reference that fails to resolve mid-walk
	// is not an error; the walk just ends there.
	ErrMemberNotFound = errors.New("member not found")

	ErrInvalidAmount = errors.New("deposit amount must be positive")
)

// Directory is the member lookup and persistence contract both the
// distributor and the tree builder run against.
type Directory interface {
	FindMemberByUID(uid string) (*models.Member, error)
	FindMemberByReferralCode(code string) (*models.Member, error)
	// ReferredUIDs returns the identifiers of members referred by uid in
	// stored order. Returned identifiers may no longer resolve.
	ReferredUIDs(uid string) ([]string, error)
	SaveMember(member *models.Member) error
}

// Ledger is the append-only transaction record contract.
type Ledger interface {
	CreateTransaction(transaction *models.Transaction) error
	CreateCommission(commission *models.Commission) error
	TransactionsByMember(memberID uint64) ([]*models.Transaction, error)
}

type Store interface {
	Directory
	Ledger

	// Atomically runs fn against a transaction-scoped store. Either every
	// write made inside fn commits or none do.
	Atomically(fn func(Store) error) error
}
