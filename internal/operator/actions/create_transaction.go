package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Create sqlconfig.TransactionCreate

	// Result holds the stored row after a successful Perform.
	Result *sqlconfig.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}
