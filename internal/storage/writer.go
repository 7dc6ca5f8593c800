package storage

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Committer ends a storage transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer gives an action the tables bound to one open transaction.
type Writer struct {
	tx           Committer
	Transactions sqlconfig.ITransactionTable
	Clients      sqlconfig.IClientTable
	TaxProfiles  sqlconfig.ITaxProfileTable
}

func NewWriter(
	tx Committer,
	transactions sqlconfig.ITransactionTable,
	clients sqlconfig.IClientTable,
	taxProfiles sqlconfig.ITaxProfileTable,
) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Clients:      clients,
		TaxProfiles:  taxProfiles,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
