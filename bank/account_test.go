package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckingRules(t *testing.T) {
	c := newChecking(1, customer("Ada"), d("100"))
	assert.Equal(t, KindChecking, c.Kind())

	ok, err := c.Withdraw(d("100"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, c.Balance().Equal(d("-100")))

	ok, err = c.Withdraw(d("0.01"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, c.Balance().Equal(d("-100")))
}

func TestSavingsRules(t *testing.T) {
	s := newSavings(2, customer("Ada"))
	assert.Equal(t, KindSavings, s.Kind())

	ok, err := s.Withdraw(d("0.01"))
	require.NoError(t, err)
	assert.False(t, ok)

	s.Deposit(d("5"))
	ok, err = s.Withdraw(d("5"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.Balance().IsZero())
}

func TestLockKeepsDeposits(t *testing.T) {
	for _, a := range []Account{newChecking(1, customer("Ada"), d("100")), newSavings(2, customer("Ada"))} {
		t.Run(string(a.Kind()), func(t *testing.T) {
			a.Deposit(d("10"))
			a.Lock()
			a.Lock()
			assert.True(t, a.IsLocked())

			a.Deposit(d("2.5"))
			a.Deposit(decimal.Zero)
			assert.True(t, a.Balance().Equal(d("12.5")))

			ok, err := a.Withdraw(d("1"))
			require.ErrorIs(t, err, ErrLocked)
			assert.False(t, ok)
			assert.True(t, a.Balance().Equal(d("12.5")))
		})
	}
}

func TestSnapshotOf(t *testing.T) {
	owner := customer("Ada")
	c := newChecking(7, owner, d("100"))
	c.Deposit(d("3"))
	snap := snapshotOf(c)
	assert.Equal(t, int64(7), snap.Number)
	assert.Same(t, owner, snap.Owner)
	assert.True(t, snap.OverdraftLimit.Equal(d("100")))

	s := snapshotOf(newSavings(8, owner))
	assert.True(t, s.OverdraftLimit.IsZero())
	assert.Equal(t, KindSavings, s.Kind)
}
