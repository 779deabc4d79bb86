package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	born := time.Date(1990, time.March, 14, 23, 30, 0, 0, time.UTC)
	c := NewCustomer("Ada", born)
	other := NewCustomer("Ada", born)

	assert.NotEmpty(t, c.ID())
	assert.NotEqual(t, c.ID(), other.ID())
	assert.Equal(t, "Ada", c.Name())
	assert.Equal(t, time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC), c.Birthdate())
	assert.Equal(t, "Ada 1990-03-14", c.String())
}

func TestCustomerJSON(t *testing.T) {
	c := NewCustomer("Ada", time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC))
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, c.ID(), out["id"])
	assert.Equal(t, "Ada", out["name"])
	assert.Equal(t, "1990-03-14", out["birthdate"])
}

func TestTransactionInvolves(t *testing.T) {
	tx := Transaction{AccountNumber: 1, FromAccount: 1, ToAccount: 2, Type: TransactionTransfer}
	assert.True(t, tx.Involves(1))
	assert.True(t, tx.Involves(2))
	assert.False(t, tx.Involves(3))
}
