package report

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownKind is returned by Compute for a Kind outside the enum.
var ErrUnknownKind = errors.New("unknown report kind")

// BalanceReport sums income and expenses. Balance may be negative.
type BalanceReport struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// Rounded returns the report in whole currency units.
func (b BalanceReport) Rounded() BalanceReport {
	return BalanceReport{
		Income:   Round(b.Income),
		Expenses: Round(b.Expenses),
		Balance:  Round(b.Balance),
	}
}

// IVAReport is the VAT extracted from tax-inclusive amounts. VATNet may be
// negative.
type IVAReport struct {
	VATCharged    decimal.Decimal
	VATDeductible decimal.Decimal
	VATNet        decimal.Decimal
}

// Rounded returns the report in whole currency units.
func (r IVAReport) Rounded() IVAReport {
	return IVAReport{
		VATCharged:    Round(r.VATCharged),
		VATDeductible: Round(r.VATDeductible),
		VATNet:        Round(r.VATNet),
	}
}

// Balance folds movements into exact income and expense totals.
func Balance(movements []Movement) BalanceReport {
	r := fold(movements, BalanceReport{Income: decimal.Zero, Expenses: decimal.Zero},
		func(acc BalanceReport, m Movement) BalanceReport {
			if m.Flow == FlowIncome {
				acc.Income = acc.Income.Add(m.Amount)
			} else {
				acc.Expenses = acc.Expenses.Add(m.Amount)
			}
			return acc
		})
	r.Balance = r.Income.Sub(r.Expenses)
	return r
}

// VAT folds movements into exact charged and deductible VAT.
func VAT(movements []Movement) IVAReport {
	r := fold(movements, IVAReport{VATCharged: decimal.Zero, VATDeductible: decimal.Zero},
		func(acc IVAReport, m Movement) IVAReport {
			if !m.Taxable() {
				return acc
			}
			_, tax := m.Split()
			if m.Flow == FlowIncome {
				acc.VATCharged = acc.VATCharged.Add(tax)
			} else {
				acc.VATDeductible = acc.VATDeductible.Add(tax)
			}
			return acc
		})
	r.VATNet = r.VATCharged.Sub(r.VATDeductible)
	return r
}

// Result is the outcome of Compute. Exactly one of Balance or IVA is set,
// matching Kind.
type Result struct {
	Kind    Kind
	Balance *BalanceReport
	IVA     *IVAReport
}

// Compute runs the report for kind and rounds it for presentation.
func Compute(kind Kind, movements []Movement) (Result, error) {
	switch kind {
	case KindBalance:
		r := Balance(movements).Rounded()
		return Result{Kind: kind, Balance: &r}, nil
	case KindIVA:
		r := VAT(movements).Rounded()
		return Result{Kind: kind, IVA: &r}, nil
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
