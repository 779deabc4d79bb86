package bank

import (
	"go-ledger/models"

	"github.com/shopspring/decimal"
)

// Kind identifies an account variant
type Kind string

const (
	KindChecking Kind = "checking"
	KindSavings  Kind = "savings"
)

// Account is the capability set shared by checking and savings accounts.
// Implementations are not safe for concurrent use; Bank serializes access.
type Account interface {
	Number() int64
	Owner() *models.Customer
	Kind() Kind
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal)
	Withdraw(amount decimal.Decimal) (bool, error)
	Lock()
	IsLocked() bool
}

var (
	_ Account = (*Checking)(nil)
	_ Account = (*Savings)(nil)
)

// base holds the record every variant shares.
type base struct {
	number  int64
	owner   *models.Customer
	balance decimal.Decimal
	locked  bool
}

func (a *base) Number() int64            { return a.number }
func (a *base) Owner() *models.Customer  { return a.owner }
func (a *base) Balance() decimal.Decimal { return a.balance }
func (a *base) Lock()                    { a.locked = true }
func (a *base) IsLocked() bool           { return a.locked }

// Deposit adds amount to the balance. Non-positive amounts are ignored; locks do not apply.
func (a *base) Deposit(amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	a.balance = a.balance.Add(amount)
}

// withdraw debits amount if the resulting balance stays at or above floor.
func (a *base) withdraw(amount, floor decimal.Decimal) (bool, error) {
	if a.locked {
		return false, ErrLocked
	}
	if !amount.IsPositive() {
		return false, nil
	}
	next := a.balance.Sub(amount)
	if next.LessThan(floor) {
		return false, nil
	}
	a.balance = next
	return true, nil
}

// Checking may run a negative balance down to -OverdraftLimit.
type Checking struct {
	base
	overdraft decimal.Decimal
}

func newChecking(number int64, owner *models.Customer, overdraft decimal.Decimal) *Checking {
	return &Checking{
		base:      base{number: number, owner: owner},
		overdraft: overdraft,
	}
}

func (c *Checking) Kind() Kind                      { return KindChecking }
func (c *Checking) OverdraftLimit() decimal.Decimal { return c.overdraft }

func (c *Checking) Withdraw(amount decimal.Decimal) (bool, error) {
	return c.withdraw(amount, c.overdraft.Neg())
}

// Savings never goes below zero.
type Savings struct {
	base
}

func newSavings(number int64, owner *models.Customer) *Savings {
	return &Savings{base: base{number: number, owner: owner}}
}

func (s *Savings) Kind() Kind { return KindSavings }

func (s *Savings) Withdraw(amount decimal.Decimal) (bool, error) {
	return s.withdraw(amount, decimal.Zero)
}

// Snapshot is a point-in-time copy of an account, safe to hand out of the registry.
type Snapshot struct {
	Number         int64            `json:"accountNumber"`
	Kind           Kind             `json:"type"`
	Owner          *models.Customer `json:"owner"`
	Balance        decimal.Decimal  `json:"balance"`
	OverdraftLimit decimal.Decimal  `json:"overdraftLimit"`
	Locked         bool             `json:"locked"`
}

func snapshotOf(a Account) Snapshot {
	s := Snapshot{
		Number:  a.Number(),
		Kind:    a.Kind(),
		Owner:   a.Owner(),
		Balance: a.Balance(),
		Locked:  a.IsLocked(),
	}
	if c, ok := a.(*Checking); ok {
		s.OverdraftLimit = c.OverdraftLimit()
	}
	return s
}
