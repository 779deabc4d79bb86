package bank

import "errors"

var (
	// ErrLocked is returned when a withdrawal hits a locked account,
	// including the first leg of a transfer.
	ErrLocked = errors.New("account locked")

	// ErrNumbersExhausted is returned when the next account number would pass the ceiling.
	ErrNumbersExhausted = errors.New("account numbers exhausted")
)
