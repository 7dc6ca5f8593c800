package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type CreateTaxProfile struct {
	Create sqlconfig.TaxProfileCreate

	Result *sqlconfig.TaxProfile
}

func (c *CreateTaxProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.TaxProfiles.FindByOwner(ctx, c.Create.OwnerID)
	switch {
	case err == nil:
		return sqlconfig.ErrDuplicate
	case !errors.Is(err, sqlconfig.ErrNotFound):
		return err
	}

	row, err := writer.TaxProfiles.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

type UpdateTaxProfile struct {
	OwnerID uuid.UUID
	Update  sqlconfig.TaxProfileUpdate

	Result *sqlconfig.TaxProfile
}

func (u *UpdateTaxProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.TaxProfiles.FindByOwner(ctx, u.OwnerID)
	if err != nil {
		return err
	}
	if err := writer.TaxProfiles.Update(ctx, existing.ID, &u.Update); err != nil {
		return err
	}
	row, err := writer.TaxProfiles.FindByOwner(ctx, u.OwnerID)
	if err != nil {
		return err
	}
	u.Result = row
	return nil
}

type DeleteTaxProfile struct {
	OwnerID uuid.UUID
}

func (d *DeleteTaxProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.TaxProfiles.FindByOwner(ctx, d.OwnerID)
	if err != nil {
		return err
	}
	return writer.TaxProfiles.Delete(ctx, existing.ID)
}
