// Package report renders bank data as plain text for the reporting endpoints.
// Formatting is cosmetic only: amounts are rounded for display, never for bookkeeping.
package report

import (
	"strconv"
	"strings"

	"go-ledger/bank"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Formatter prints amounts in one currency, at that currency's standard scale
type Formatter struct {
	unit  currency.Unit
	scale int32
}

func NewFormatter(unit currency.Unit) *Formatter {
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{unit: unit, scale: int32(scale)}
}

// Default formats in euros.
func Default() *Formatter {
	return NewFormatter(currency.EUR)
}

// Amount formats a value at the currency's scale followed by its ISO code.
// Rounding is half away from zero and exact for any magnitude.
func (f *Formatter) Amount(d decimal.Decimal) string {
	return d.StringFixed(f.scale) + " " + f.unit.String()
}

// Accounts lists every account number with its formatted balance.
func (f *Formatter) Accounts(accounts []bank.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("Account numbers:\n")
	for _, a := range accounts {
		sb.WriteString("\n")
		sb.WriteString("Account number: " + strconv.FormatInt(a.Number, 10) + "\n")
		sb.WriteString("Balance: " + f.Amount(a.Balance) + "\n")
	}
	return sb.String()
}

// Lines joins entries one per line, each terminated by a newline.
func Lines(entries []string) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	return sb.String()
}
