package referral

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/refpay/refpay/models"
)

// GormStore backs the referral contracts with postgres. Inside Atomically
// every member read takes a SELECT ... FOR UPDATE row lock, so concurrent
// deposits touching the same ancestor serialize instead of losing updates.
type GormStore struct {
	db      *gorm.DB
	locking bool
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) memberScope() *gorm.DB {
	if s.locking {
		return s.db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return s.db
}

func (s *GormStore) FindMemberByUID(uid string) (*models.Member, error) {
	member := &models.Member{}

	if err := s.memberScope().First(member, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}

		return nil, err
	}

	return member, nil
}

func (s *GormStore) FindMemberByReferralCode(code string) (*models.Member, error) {
	member := &models.Member{}

	if err := s.memberScope().First(member, "referral_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}

		return nil, err
	}

	return member, nil
}

func (s *GormStore) ReferredUIDs(uid string) ([]string, error) {
	var uids []string

	err := s.db.
		Model(&models.Member{}).
		Where("referral_uid = ?", uid).
		Order("id asc").
		Pluck("uid", &uids).Error

	return uids, err
}

func (s *GormStore) SaveMember(member *models.Member) error {
	return s.db.Save(member).Error
}

func (s *GormStore) CreateTransaction(transaction *models.Transaction) error {
	return s.db.Create(transaction).Error
}

func (s *GormStore) CreateCommission(commission *models.Commission) error {
	return s.db.Create(commission).Error
}

func (s *GormStore) TransactionsByMember(memberID uint64) ([]*models.Transaction, error) {
	var transactions []*models.Transaction

	err := s.db.
		Order("created_at asc").
		Find(&transactions, "member_id = ?", memberID).Error

	return transactions, err
}

func (s *GormStore) Atomically(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, locking: true})
	})
}
