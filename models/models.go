package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BirthdateLayout is the calendar-date format used for birthdates on the wire and in reports.
const BirthdateLayout = "2006-01-02"

// Customer represents a bank customer. Fields are fixed at construction.
type Customer struct {
	id        string
	name      string
	birthdate time.Time
}

// NewCustomer creates a customer with a fresh ID. Only the calendar date of birthdate is kept.
func NewCustomer(name string, birthdate time.Time) *Customer {
	y, m, d := birthdate.Date()
	return &Customer{
		id:        uuid.New().String(),
		name:      name,
		birthdate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func (c *Customer) ID() string           { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Birthdate() time.Time { return c.birthdate }

// String renders the customer as "name yyyy-mm-dd".
func (c *Customer) String() string {
	return c.name + " " + c.birthdate.Format(BirthdateLayout)
}

func (c *Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Birthdate string `json:"birthdate"`
	}{
		ID:        c.id,
		Name:      c.name,
		Birthdate: c.birthdate.Format(BirthdateLayout),
	})
}

// TransactionType classifies a journal entry
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionTransfer   TransactionType = "transfer"
)

// Transaction represents a completed money movement
type Transaction struct {
	ID            string          `json:"id"`
	AccountNumber int64           `json:"accountNumber"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	FromAccount   int64           `json:"fromAccount,omitempty"`
	ToAccount     int64           `json:"toAccount,omitempty"`
	Memo          string          `json:"memo,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Involves reports whether the transaction touched the given account.
func (t Transaction) Involves(number int64) bool {
	return t.AccountNumber == number || t.FromAccount == number || t.ToAccount == number
}
