package referral

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/refpay/refpay/models"
)

var errSaveRefused = errors.New("save refused")

// memStore is an in-memory Store with snapshot-rollback Atomically, enough
// to exercise the distributor and tree builder without postgres.
type memStore struct {
	mu sync.Mutex

	members  map[string]*models.Member
	order    []string
	dangling map[string][]string

	transactions []*models.Transaction
	commissions  []*models.Commission

	nextID    uint64
	failSaves map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		members:   make(map[string]*models.Member),
		dangling:  make(map[string][]string),
		failSaves: make(map[string]bool),
	}
}

func (s *memStore) addMember(uid, referrerUID string, wallet decimal.Decimal) *models.Member {
	s.nextID++

	member := &models.Member{
		ID:           s.nextID,
		UID:          uid,
		Name:         "member " + uid,
		Email:        uid + "@example.com",
		ReferralCode: models.GenerateReferralCode(),
		Wallet:       wallet,
	}
	if len(referrerUID) > 0 {
		member.ReferralUID = sql.NullString{String: referrerUID, Valid: true}
	}

	s.members[uid] = member
	s.order = append(s.order, uid)

	return copyMember(member)
}

func (s *memStore) removeMember(uid string) {
	delete(s.members, uid)
}

func (s *memStore) walletOf(uid string) decimal.Decimal {
	return s.members[uid].Wallet
}

func copyMember(m *models.Member) *models.Member {
	c := *m
	return &c
}

func (s *memStore) FindMemberByUID(uid string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[uid]
	if !ok {
		return nil, ErrMemberNotFound
	}

	return copyMember(member), nil
}

func (s *memStore) FindMemberByReferralCode(code string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, uid := range s.order {
		if member, ok := s.members[uid]; ok && member.ReferralCode == code {
			return copyMember(member), nil
		}
	}

	return nil, ErrMemberNotFound
}

func (s *memStore) ReferredUIDs(uid string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uids := make([]string, 0)
	for _, candidate := range s.order {
		member, ok := s.members[candidate]
		if ok && member.ReferralUID.Valid && member.ReferralUID.String == uid {
			uids = append(uids, candidate)
		}
	}

	return append(uids, s.dangling[uid]...), nil
}

func (s *memStore) SaveMember(member *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSaves[member.UID] {
		return errSaveRefused
	}

	if member.ID == 0 {
		s.nextID++
		member.ID = s.nextID
	}
	if _, ok := s.members[member.UID]; !ok {
		s.order = append(s.order, member.UID)
	}

	s.members[member.UID] = copyMember(member)

	return nil
}

func (s *memStore) CreateTransaction(transaction *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	transaction.ID = s.nextID
	transaction.CreatedAt = time.Now()

	c := *transaction
	s.transactions = append(s.transactions, &c)

	return nil
}

func (s *memStore) CreateCommission(commission *models.Commission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	commission.ID = s.nextID
	commission.CreatedAt = time.Now()

	c := *commission
	s.commissions = append(s.commissions, &c)

	return nil
}

func (s *memStore) TransactionsByMember(memberID uint64) ([]*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]*models.Transaction, 0)
	for _, transaction := range s.transactions {
		if transaction.MemberID == memberID {
			c := *transaction
			transactions = append(transactions, &c)
		}
	}

	return transactions, nil
}

func (s *memStore) Atomically(fn func(Store) error) error {
	s.mu.Lock()
	membersSnapshot := make(map[string]*models.Member, len(s.members))
	for uid, member := range s.members {
		membersSnapshot[uid] = copyMember(member)
	}
	orderSnapshot := append([]string(nil), s.order...)
	transactionsSnapshot := append([]*models.Transaction(nil), s.transactions...)
	commissionsSnapshot := append([]*models.Commission(nil), s.commissions...)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.members = membersSnapshot
		s.order = orderSnapshot
		s.transactions = transactionsSnapshot
		s.commissions = commissionsSnapshot
		s.mu.Unlock()

		return err
	}

	return nil
}
