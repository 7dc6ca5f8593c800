package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []string{
	"id", "owner_id", "kind", "amount", "has_tax", "tax_rate",
	"description", "category", "date", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to a database handle or transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns(transactionColumns)...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(transactionsTableName,
			"id", "owner_id", "kind", "amount", "has_tax", "tax_rate", "description", "category", "date"),
		im.Values(args(
			create.ID,
			create.OwnerID,
			string(create.Kind),
			create.Amount,
			create.HasTax,
			create.TaxRate,
			create.Description,
			create.Category,
			create.Date.Format(DateLayout),
		)...),
		im.Returning(columns(transactionColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Update overwrites the mutable columns of a transaction.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	q := psql.Update(
		um.Table(transactionsTableName),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("has_tax").ToArg(update.HasTax),
		um.SetCol("tax_rate").ToArg(update.TaxRate),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("category").ToArg(update.Category),
		um.SetCol("date").ToArg(update.Date.Format(DateLayout)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(psql.Quote("id")),
	)
	_, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	return translateError(err)
}

// Delete removes a transaction.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning(psql.Quote("id")),
	)
	_, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	return translateError(err)
}

// List returns the owner's transactions, newest first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns(transactionColumns)...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(filter.OwnerID))),
	}
	if filter.From != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(filter.From.Format(DateLayout)))))
	}
	if filter.To != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(filter.To.Format(DateLayout)))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}
