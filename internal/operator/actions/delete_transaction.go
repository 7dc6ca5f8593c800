package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
)

type DeleteTransaction struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedTransaction(ctx, writer, d.ID, d.OwnerID); err != nil {
		return err
	}
	return writer.Transactions.Delete(ctx, d.ID)
}
