package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionKind is stored as text in the kind column.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID        `db:"id"`
	OwnerID     uuid.UUID        `db:"owner_id"`
	Kind        TransactionKind  `db:"kind"`
	Amount      decimal.Decimal  `db:"amount"`
	HasTax      bool             `db:"has_tax"`
	TaxRate     decimal.Decimal  `db:"tax_rate"`
	Description null.Val[string] `db:"description"`
	Category    null.Val[string] `db:"category"`
	Date        time.Time        `db:"date"`
	CreatedAt   time.Time        `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Kind        TransactionKind
	Amount      decimal.Decimal
	HasTax      bool
	TaxRate     decimal.Decimal
	Description null.Val[string]
	Category    null.Val[string]
	Date        time.Time
}

// TransactionUpdate replaces the mutable fields of a transaction.
// Owner and kind never change.
type TransactionUpdate struct {
	Amount      decimal.Decimal
	HasTax      bool
	TaxRate     decimal.Decimal
	Description null.Val[string]
	Category    null.Val[string]
	Date        time.Time
}

// TransactionFilter scopes a listing to one owner. From and To are compared
// by calendar day, both inclusive; nil leaves that side open.
type TransactionFilter struct {
	OwnerID uuid.UUID
	From    *time.Time
	To      *time.Time
	Limit   int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
