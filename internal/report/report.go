// Package report computes balance and VAT summaries over transaction
// movements. Everything here is a pure function of its input.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the closed set of supported reports.
type Kind int8

const (
	KindBalance Kind = iota
	KindIVA
)

func (k Kind) String() string {
	switch k {
	case KindBalance:
		return "balance"
	case KindIVA:
		return "iva"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// ParseKind maps a route tag to a Kind. "income-and-expenses" is the
// older name of the balance report.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "balance", "income-and-expenses":
		return KindBalance, nil
	case "iva":
		return KindIVA, nil
	default:
		return 0, fmt.Errorf("unknown report kind %q", s)
	}
}

// Flow is the direction of a movement.
type Flow int8

const (
	FlowIncome Flow = iota
	FlowExpense
)

// Movement is the part of a transaction the engine cares about.
type Movement struct {
	Flow    Flow
	Amount  decimal.Decimal
	HasTax  bool
	TaxRate decimal.Decimal
}

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Taxable reports whether the movement carries VAT to extract.
func (m Movement) Taxable() bool {
	return m.HasTax && !m.TaxRate.IsZero() && !m.Amount.IsZero()
}

// Split separates a tax-inclusive amount into its net and tax parts.
// Non-taxable movements are all net.
func (m Movement) Split() (net, tax decimal.Decimal) {
	if !m.Taxable() {
		return m.Amount, decimal.Zero
	}
	net = m.Amount.Div(decimal.NewFromInt(1).Add(m.TaxRate.Div(hundred)))
	return net, m.Amount.Sub(net)
}

// Round rounds to the nearest integer with ties toward positive infinity,
// so 0.5 becomes 1 and -0.5 becomes 0.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// fold threads an accumulator through the movements.
func fold[T any](movements []Movement, acc T, step func(T, Movement) T) T {
	for _, m := range movements {
		acc = step(acc, m)
	}
	return acc
}
