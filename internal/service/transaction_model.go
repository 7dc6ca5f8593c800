package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/report"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// DefaultTaxRate is the standard Costa Rica VAT rate, in percent.
var DefaultTaxRate = decimal.NewFromInt(13)

const (
	maxDescriptionLength = 255
	maxCategoryLength    = 100
	// amountScale matches the NUMERIC(14,2) and NUMERIC(5,2) columns.
	amountScale = 2
)

var maxAmount = decimal.RequireFromString("999999999999.99")

// TransactionKind represents a transaction direction in the service layer.
type TransactionKind int8

const (
	TransactionKindIncome TransactionKind = iota
	TransactionKindExpense
)

func (k TransactionKind) String() string {
	if k == TransactionKindExpense {
		return "expense"
	}
	return "income"
}

// ParseTransactionKind accepts income/expense and the Spanish
// ingreso/egreso.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "ingreso":
		return TransactionKindIncome, nil
	case "expense", "egreso":
		return TransactionKindExpense, nil
	default:
		return 0, &ValidationError{Field: "kind", Reason: fmt.Sprintf("must be income or expense, got %q", s)}
	}
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Kind        TransactionKind
	Amount      decimal.Decimal
	HasTax      bool
	TaxRate     decimal.Decimal
	Description string
	Category    string
	// Date is a calendar day; only its year, month and day are meaningful.
	Date      time.Time
	CreatedAt time.Time
}

// Movement is the transaction as the report engine sees it.
func (t Transaction) Movement() report.Movement {
	flow := report.FlowIncome
	if t.Kind == TransactionKindExpense {
		flow = report.FlowExpense
	}
	return report.Movement{Flow: flow, Amount: t.Amount, HasTax: t.HasTax, TaxRate: t.TaxRate}
}

// TransactionFields are the caller supplied values for create and update.
// A nil TaxRate means DefaultTaxRate.
type TransactionFields struct {
	Amount      decimal.Decimal
	HasTax      bool
	TaxRate     *decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// NewTransaction is the input for creating a transaction.
type NewTransaction struct {
	Kind TransactionKind
	TransactionFields
}

// TransactionChanges replaces the mutable fields of a transaction. Kind is
// optional and must equal the stored kind when present.
type TransactionChanges struct {
	Kind *TransactionKind
	TransactionFields
}

// TransactionList is a listing plus the range it covers.
type TransactionList struct {
	Range        daterange.Resolution
	Transactions []Transaction
}

func (f TransactionFields) validate() error {
	if f.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if f.Amount.GreaterThan(maxAmount) {
		return &ValidationError{Field: "amount", Reason: "must be at most " + maxAmount.String()}
	}
	if !hasScale(f.Amount, amountScale) {
		return &ValidationError{Field: "amount", Reason: fmt.Sprintf("must have at most %d decimal places", amountScale)}
	}
	if f.TaxRate != nil {
		if f.TaxRate.IsNegative() || f.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return &ValidationError{Field: "taxRate", Reason: "must be between 0 and 100"}
		}
		if !hasScale(*f.TaxRate, amountScale) {
			return &ValidationError{Field: "taxRate", Reason: fmt.Sprintf("must have at most %d decimal places", amountScale)}
		}
	}
	if len([]rune(f.Description)) > maxDescriptionLength {
		return &ValidationError{Field: "description", Reason: fmt.Sprintf("must be at most %d characters", maxDescriptionLength)}
	}
	if len([]rune(f.Category)) > maxCategoryLength {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("must be at most %d characters", maxCategoryLength)}
	}
	if f.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	return nil
}

// hasScale reports whether d is exact to the given number of decimals.
func hasScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

func (f TransactionFields) taxRate() decimal.Decimal {
	if f.TaxRate == nil {
		return DefaultTaxRate
	}
	return *f.TaxRate
}

func kindToStorage(k TransactionKind) sqlconfig.TransactionKind {
	if k == TransactionKindExpense {
		return sqlconfig.TransactionKindExpense
	}
	return sqlconfig.TransactionKindIncome
}

func kindFromStorage(k sqlconfig.TransactionKind) TransactionKind {
	if k == sqlconfig.TransactionKindExpense {
		return TransactionKindExpense
	}
	return TransactionKindIncome
}

func optionalText(s string) null.Val[string] {
	s = strings.TrimSpace(s)
	return null.FromCond(s, s != "")
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Kind:        kindFromStorage(row.Kind),
		Amount:      row.Amount,
		HasTax:      row.HasTax,
		TaxRate:     row.TaxRate,
		Description: row.Description.GetOrZero(),
		Category:    row.Category.GetOrZero(),
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
	}
}
