package referral

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonusForLevel(t *testing.T) {
	amount := decimal.NewFromInt(1000)

	tests := []struct {
		level int
		want  string
	}{
		{0, "0"},
		{1, "100"},
		{2, "20"},
		{3, "20"},
		{6, "20"},
		{7, "0"},
	}

	for _, tt := range tests {
		got := BonusForLevel(amount, tt.level)
		if got.String() != tt.want {
			t.Errorf("BonusForLevel(1000, %d) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestProcessDepositThreeLevelChain(t *testing.T) {
	store := newMemStore()
	store.addMember("R3", "", decimal.Zero)
	store.addMember("R2", "R3", decimal.Zero)
	store.addMember("R1", "R2", decimal.Zero)
	store.addMember("D1", "R1", decimal.Zero)

	result, err := NewDistributor(store).ProcessDeposit("D1", decimal.NewFromInt(1000), "bank", "ext-1")
	require.NoError(t, err)

	assert.Equal(t, "140", result.TotalDistributed.String())
	assert.Equal(t, "100", store.walletOf("R1").String())
	assert.Equal(t, "20", store.walletOf("R2").String())
	assert.Equal(t, "20", store.walletOf("R3").String())
	assert.Equal(t, "860", store.walletOf("D1").String())
	assert.Equal(t, "1000", store.members["D1"].TotalDeposits.String())

	require.Len(t, store.transactions, 1)
	transaction := store.transactions[0]
	assert.Equal(t, "1000", transaction.Amount.String())
	assert.Equal(t, "140", transaction.Commission.String())
	assert.Equal(t, "860", transaction.NetAmount.String())
	assert.Equal(t, "bank", transaction.Method)
	assert.Equal(t, "ext-1", transaction.TID.String)

	require.Len(t, store.commissions, 3)
	assert.Equal(t, int32(1), store.commissions[0].Level)
	assert.Equal(t, "100", store.commissions[0].EarnAmount.String())
	assert.Equal(t, "D1", store.commissions[0].FriendUID)
	assert.Equal(t, int32(3), store.commissions[2].Level)
	assert.Equal(t, transaction.ID, store.commissions[0].TransactionID)

	ledgered, err := store.TransactionsByMember(result.Member.ID)
	require.NoError(t, err)
	require.Len(t, ledgered, 1)
	assert.Equal(t, transaction.ID, ledgered[0].ID)
}

func TestProcessDepositNoReferrer(t *testing.T) {
	store := newMemStore()
	store.addMember("solo", "", decimal.Zero)

	result, err := NewDistributor(store).ProcessDeposit("solo", decimal.NewFromInt(500), "card", "")
	require.NoError(t, err)

	assert.True(t, result.TotalDistributed.IsZero())
	assert.Equal(t, "500", store.walletOf("solo").String())
	assert.Equal(t, "500", store.members["solo"].TotalDeposits.String())

	require.Len(t, store.transactions, 1)
	assert.Equal(t, "500", store.transactions[0].Amount.String())
	assert.True(t, store.transactions[0].Commission.IsZero())
	assert.Equal(t, "500", store.transactions[0].NetAmount.String())
	assert.False(t, store.transactions[0].TID.Valid)
	assert.Len(t, store.commissions, 0)
}

func TestProcessDepositChainCappedAtSixLevels(t *testing.T) {
	store := newMemStore()
	store.addMember("A8", "", decimal.Zero)
	store.addMember("A7", "A8", decimal.Zero)
	store.addMember("A6", "A7", decimal.Zero)
	store.addMember("A5", "A6", decimal.Zero)
	store.addMember("A4", "A5", decimal.Zero)
	store.addMember("A3", "A4", decimal.Zero)
	store.addMember("A2", "A3", decimal.Zero)
	store.addMember("A1", "A2", decimal.Zero)
	store.addMember("D", "A1", decimal.Zero)

	result, err := NewDistributor(store).ProcessDeposit("D", decimal.NewFromInt(1000), "bank", "")
	require.NoError(t, err)

	// 100 + 5 * 20
	assert.Equal(t, "200", result.TotalDistributed.String())
	assert.Equal(t, "100", store.walletOf("A1").String())
	assert.Equal(t, "20", store.walletOf("A6").String())
	assert.True(t, store.walletOf("A7").IsZero())
	assert.True(t, store.walletOf("A8").IsZero())
	assert.Equal(t, "800", store.walletOf("D").String())
	assert.Len(t, store.commissions, 6)
}

func TestProcessDepositDanglingReferrerTruncatesWalk(t *testing.T) {
	store := newMemStore()
	store.addMember("gone", "", decimal.Zero)
	store.addMember("R1", "gone", decimal.Zero)
	store.addMember("D", "R1", decimal.Zero)
	store.removeMember("gone")

	result, err := NewDistributor(store).ProcessDeposit("D", decimal.NewFromInt(1000), "bank", "")
	require.NoError(t, err)

	assert.Equal(t, "100", result.TotalDistributed.String())
	assert.Equal(t, "100", store.walletOf("R1").String())
	assert.Equal(t, "900", store.walletOf("D").String())
}

func TestProcessDepositDepositorReferrerMissing(t *testing.T) {
	store := newMemStore()
	store.addMember("gone", "", decimal.Zero)
	store.addMember("D", "gone", decimal.Zero)
	store.removeMember("gone")

	result, err := NewDistributor(store).ProcessDeposit("D", decimal.NewFromInt(250), "bank", "")
	require.NoError(t, err)

	assert.True(t, result.TotalDistributed.IsZero())
	assert.Equal(t, "250", store.walletOf("D").String())
}

func TestProcessDepositMemberNotFound(t *testing.T) {
	store := newMemStore()

	_, err := NewDistributor(store).ProcessDeposit("missing", decimal.NewFromInt(100), "bank", "")
	assert.ErrorIs(t, err, ErrMemberNotFound)
	assert.Len(t, store.transactions, 0)
}

func TestProcessDepositRejectsNonPositiveAmount(t *testing.T) {
	store := newMemStore()
	store.addMember("D", "", decimal.Zero)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := NewDistributor(store).ProcessDeposit("D", amount, "bank", "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	assert.True(t, store.walletOf("D").IsZero())
	assert.Len(t, store.transactions, 0)
}

func TestProcessDepositSaveFailureRollsBackEverything(t *testing.T) {
	store := newMemStore()
	store.addMember("R2", "", decimal.Zero)
	store.addMember("R1", "R2", decimal.Zero)
	store.addMember("D", "R1", decimal.Zero)
	store.failSaves["R2"] = true

	_, err := NewDistributor(store).ProcessDeposit("D", decimal.NewFromInt(1000), "bank", "")
	require.Error(t, err)

	// Policy: the whole distribution aborts, no partial credit survives.
	assert.True(t, store.walletOf("R1").IsZero())
	assert.True(t, store.walletOf("R2").IsZero())
	assert.True(t, store.walletOf("D").IsZero())
	assert.True(t, store.members["D"].TotalDeposits.IsZero())
	assert.Len(t, store.transactions, 0)
	assert.Len(t, store.commissions, 0)
}

func TestProcessDepositConservation(t *testing.T) {
	amounts := []string{"0.01", "0.05", "99.99", "123.45", "1000", "33.33"}

	for _, raw := range amounts {
		store := newMemStore()
		store.addMember("R3", "", decimal.Zero)
		store.addMember("R2", "R3", decimal.Zero)
		store.addMember("R1", "R2", decimal.Zero)
		store.addMember("D", "R1", decimal.Zero)

		amount := decimal.RequireFromString(raw)

		result, err := NewDistributor(store).ProcessDeposit("D", amount, "bank", "")
		require.NoError(t, err, "amount %s", raw)

		transaction := store.transactions[0]

		if !transaction.NetAmount.Add(transaction.Commission).Equal(amount) {
			t.Errorf("amount %s: net %s + commission %s != gross", raw, transaction.NetAmount, transaction.Commission)
		}
		if !store.walletOf("D").Equal(transaction.NetAmount) {
			t.Errorf("amount %s: depositor delta %s != net %s", raw, store.walletOf("D"), transaction.NetAmount)
		}

		distributed := store.walletOf("R1").Add(store.walletOf("R2")).Add(store.walletOf("R3"))
		if !distributed.Equal(result.TotalDistributed) {
			t.Errorf("amount %s: ancestor deltas %s != total distributed %s", raw, distributed, result.TotalDistributed)
		}
	}
}

func TestProcessDepositCyclicChainIsBounded(t *testing.T) {
	store := newMemStore()
	store.addMember("A", "B", decimal.Zero)
	store.addMember("B", "A", decimal.Zero)

	result, err := NewDistributor(store).ProcessDeposit("A", decimal.NewFromInt(100), "bank", "")
	require.NoError(t, err)

	// The walk stops at the level cap; 10 + 5 * 2.
	assert.Equal(t, "20", result.TotalDistributed.String())

	total := store.walletOf("A").Add(store.walletOf("B"))
	assert.Equal(t, "100", total.String())
}
