package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type UpdateTransaction struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	// Kind, when set, must match the stored kind.
	Kind   *sqlconfig.TransactionKind
	Update sqlconfig.TransactionUpdate

	Result *sqlconfig.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := ownedTransaction(ctx, writer, u.ID, u.OwnerID)
	if err != nil {
		return err
	}
	if u.Kind != nil && *u.Kind != existing.Kind {
		return ErrKindChanged
	}

	if err := writer.Transactions.Update(ctx, u.ID, &u.Update); err != nil {
		return err
	}

	row, err := writer.Transactions.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	u.Result = row
	return nil
}

// ownedTransaction hides other owners' transactions behind ErrNotFound.
func ownedTransaction(ctx context.Context, writer *storage.Writer, id, ownerID uuid.UUID) (*sqlconfig.Transaction, error) {
	row, err := writer.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.OwnerID != ownerID {
		return nil, sqlconfig.ErrNotFound
	}
	return row, nil
}
