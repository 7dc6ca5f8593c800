package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type CreateClient struct {
	Create sqlconfig.ClientCreate

	Result *sqlconfig.Client
}

func (c *CreateClient) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Clients.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

type UpdateClient struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Update  sqlconfig.ClientUpdate

	Result *sqlconfig.Client
}

func (u *UpdateClient) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedClient(ctx, writer, u.ID, u.OwnerID); err != nil {
		return err
	}
	if err := writer.Clients.Update(ctx, u.ID, &u.Update); err != nil {
		return err
	}
	row, err := writer.Clients.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	u.Result = row
	return nil
}

type DeleteClient struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

func (d *DeleteClient) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedClient(ctx, writer, d.ID, d.OwnerID); err != nil {
		return err
	}
	return writer.Clients.Delete(ctx, d.ID)
}

// ownedClient reports a foreign client as ErrForbidden.
func ownedClient(ctx context.Context, writer *storage.Writer, id, ownerID uuid.UUID) (*sqlconfig.Client, error) {
	row, err := writer.Clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return row, nil
}
