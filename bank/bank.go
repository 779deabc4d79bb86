// Package bank holds the account registry and the rules for moving money
// between accounts. A single mutex serializes every read and write so that
// transfers are atomic and batch queries see a consistent registry.
package bank

import (
	"slices"
	"sync"

	"go-ledger/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultNumberBase = int64(1_000_000_000)
	DefaultMaxNumber  = int64(2_000_000_000)
)

// DefaultOverdraft is the overdraft limit given to new checking accounts.
var DefaultOverdraft = decimal.NewFromInt(100)

// Options configures a Bank. Values are used as given: start from
// DefaultOptions and override. A zero Overdraft means checking accounts
// cannot go negative.
type Options struct {
	NumberBase int64
	MaxNumber  int64
	Overdraft  decimal.Decimal
}

func DefaultOptions() Options {
	return Options{
		NumberBase: DefaultNumberBase,
		MaxNumber:  DefaultMaxNumber,
		Overdraft:  DefaultOverdraft,
	}
}

// Bank owns every account it opened, keyed by account number.
type Bank struct {
	mu         sync.Mutex
	routing    int64
	base       int64
	nextNumber int64
	maxNumber  int64
	overdraft  decimal.Decimal
	accounts   map[int64]Account
}

// New creates an empty bank with the given routing number.
// The first account number issued is opts.NumberBase+1.
func New(routingNumber int64, opts Options) *Bank {
	return &Bank{
		routing:    routingNumber,
		base:       opts.NumberBase,
		nextNumber: opts.NumberBase,
		maxNumber:  opts.MaxNumber,
		overdraft:  opts.Overdraft,
		accounts:   make(map[int64]Account),
	}
}

func (b *Bank) RoutingNumber() int64 { return b.routing }

// allocate reserves the next account number. Callers hold b.mu.
func (b *Bank) allocate() (int64, error) {
	if b.nextNumber >= b.maxNumber {
		return 0, ErrNumbersExhausted
	}
	b.nextNumber++
	return b.nextNumber, nil
}

// OpenChecking registers a zero-balance checking account for owner.
func (b *Bank) OpenChecking(owner *models.Customer) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, err := b.allocate()
	if err != nil {
		return 0, err
	}
	b.accounts[n] = newChecking(n, owner, b.overdraft)
	return n, nil
}

// OpenSavings registers a zero-balance savings account for owner.
func (b *Bank) OpenSavings(owner *models.Customer) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, err := b.allocate()
	if err != nil {
		return 0, err
	}
	b.accounts[n] = newSavings(n, owner)
	return n, nil
}

// Close unregisters the account and reports whether it existed.
// The balance is not checked and the number is never handed out again.
func (b *Bank) Close(number int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.accounts[number]; !ok {
		return false
	}
	delete(b.accounts, number)
	return true
}

// AccountNumbers returns every registered number in ascending order.
func (b *Bank) AccountNumbers() []int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sortedNumbers()
}

func (b *Bank) sortedNumbers() []int64 {
	out := make([]int64, 0, len(b.accounts))
	for n := range b.accounts {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Account returns a snapshot of a single account.
func (b *Bank) Account(number int64) (Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accounts[number]
	if !ok {
		return Snapshot{}, false
	}
	return snapshotOf(a), true
}

// BalanceOf returns the balance of an account; ok is false if it does not exist.
func (b *Bank) BalanceOf(number int64) (decimal.Decimal, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accounts[number]
	if !ok {
		return decimal.Zero, false
	}
	return a.Balance(), true
}

// Deposit credits an account. Unknown accounts and non-positive amounts are ignored.
func (b *Bank) Deposit(number int64, amount decimal.Decimal) {
	b.Credit(number, amount)
}

// Credit deposits like Deposit and reports the outcome from the same
// critical section: the resulting balance, whether the balance changed,
// and whether the account exists.
func (b *Bank) Credit(number int64, amount decimal.Decimal) (balance decimal.Decimal, applied, found bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accounts[number]
	if !ok {
		return decimal.Zero, false, false
	}
	before := a.Balance()
	a.Deposit(amount)
	after := a.Balance()
	return after, !after.Equal(before), true
}

// Withdraw debits an account. It returns ErrLocked for a locked account
// whatever the amount, and false for unknown accounts, non-positive
// amounts, or a debit past the account's limit.
func (b *Bank) Withdraw(number int64, amount decimal.Decimal) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accounts[number]
	if !ok {
		return false, nil
	}
	return a.Withdraw(amount)
}

// Transfer moves amount between two checking accounts. The memo is not
// interpreted here. Both accounts must exist and be checking accounts,
// otherwise false is returned; a locked source yields ErrLocked.
// The credit only happens after the debit succeeded.
func (b *Bank) Transfer(from, to int64, amount decimal.Decimal, memo string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	src, ok1 := b.accounts[from]
	dst, ok2 := b.accounts[to]
	if !ok1 || !ok2 {
		return false, nil
	}
	if src.Kind() != KindChecking || dst.Kind() != KindChecking {
		return false, nil
	}
	ok, err := src.Withdraw(amount)
	if err != nil || !ok {
		return false, err
	}
	dst.Deposit(amount)
	return true, nil
}

// LockOverdrawn locks every account with a negative balance and returns
// how many were newly locked.
func (b *Bank) LockOverdrawn() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	locked := 0
	for _, a := range b.accounts {
		if a.Balance().IsNegative() && !a.IsLocked() {
			a.Lock()
			locked++
		}
	}
	return locked
}

// AccountsAtLeast returns snapshots of the accounts holding at least minimum, by number.
func (b *Bank) AccountsAtLeast(minimum decimal.Decimal) []Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Snapshot
	for _, n := range b.sortedNumbers() {
		a := b.accounts[n]
		if a.Balance().GreaterThanOrEqual(minimum) {
			out = append(out, snapshotOf(a))
		}
	}
	return out
}

// Snapshots returns every account, by number.
func (b *Bank) Snapshots() []Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Snapshot, 0, len(b.accounts))
	for _, n := range b.sortedNumbers() {
		out = append(out, snapshotOf(b.accounts[n]))
	}
	return out
}

// CustomerBirthdays lists "name yyyy-mm-dd" once per distinct owner,
// in order of each owner's lowest account number.
func (b *Bank) CustomerBirthdays() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, n := range b.sortedNumbers() {
		owner := b.accounts[n].Owner()
		if owner == nil {
			continue
		}
		line := owner.String()
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}

// FreeAccountNumbers returns the issued numbers that are no longer
// registered, ascending. They stay retired and are not reissued.
func (b *Bank) FreeAccountNumbers() []int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []int64
	for n := b.base + 1; n <= b.nextNumber; n++ {
		if _, ok := b.accounts[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}
