package store

import (
	"testing"
	"time"

	"go-ledger/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomers(t *testing.T) {
	s := New()
	c := models.NewCustomer("Ada", time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC))
	s.AddCustomer(c)

	got, ok := s.GetCustomerByID(c.ID())
	require.True(t, ok)
	assert.Same(t, c, got)

	_, ok = s.GetCustomerByID("missing")
	assert.False(t, ok)
}

func TestJournal(t *testing.T) {
	s := New()
	dep := s.RecordDeposit(1, decimal.NewFromInt(10))
	s.RecordWithdrawal(2, decimal.NewFromInt(5))
	tr := s.RecordTransfer(1, 2, decimal.NewFromInt(3), "rent")

	assert.NotEmpty(t, dep.ID)
	assert.NotEqual(t, dep.ID, tr.ID)
	assert.False(t, tr.CreatedAt.IsZero())

	one := s.GetTransactionsByAccount(1)
	require.Len(t, one, 2)
	assert.Equal(t, models.TransactionDeposit, one[0].Type)
	assert.Equal(t, models.TransactionTransfer, one[1].Type)
	assert.Equal(t, "rent", one[1].Memo)

	two := s.GetTransactionsByAccount(2)
	require.Len(t, two, 2)
	assert.Equal(t, models.TransactionWithdrawal, two[0].Type)
	assert.Equal(t, int64(2), two[1].ToAccount)

	assert.Empty(t, s.GetTransactionsByAccount(3))
}
