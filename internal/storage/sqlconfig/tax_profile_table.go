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

const taxProfilesTableName = "tax_profiles"

var taxProfileColumns = []string{
	"id", "owner_id", "contributor_type", "pays_iva", "pays_renta", "monthly_iva_due", "notes", "created_at",
}

var _ ITaxProfileTable = (*TaxProfilesTable)(nil)

type TaxProfilesTable struct {
	exec bob.Executor
}

func NewTaxProfilesTable(exec bob.Executor) *TaxProfilesTable {
	return &TaxProfilesTable{exec: exec}
}

func (t *TaxProfilesTable) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*TaxProfile, error) {
	q := psql.Select(
		sm.Columns(columns(taxProfileColumns)...),
		sm.From(taxProfilesTableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*TaxProfile]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Insert returns ErrDuplicate when the owner already has a profile.
func (t *TaxProfilesTable) Insert(ctx context.Context, create *TaxProfileCreate) (*TaxProfile, error) {
	q := psql.Insert(
		im.Into(taxProfilesTableName,
			"id", "owner_id", "contributor_type", "pays_iva", "pays_renta", "monthly_iva_due", "notes"),
		im.Values(args(
			create.ID,
			create.OwnerID,
			string(create.ContributorType),
			create.PaysIVA,
			create.PaysRenta,
			create.MonthlyIVADue,
			create.Notes,
		)...),
		im.Returning(columns(taxProfileColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*TaxProfile]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *TaxProfilesTable) Update(ctx context.Context, id uuid.UUID, update *TaxProfileUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(taxProfilesTableName)}
	if v, ok := update.ContributorType.Get(); ok {
		queryMods = append(queryMods, um.SetCol("contributor_type").ToArg(string(v)))
	}
	if v, ok := update.PaysIVA.Get(); ok {
		queryMods = append(queryMods, um.SetCol("pays_iva").ToArg(v))
	}
	if v, ok := update.PaysRenta.Get(); ok {
		queryMods = append(queryMods, um.SetCol("pays_renta").ToArg(v))
	}
	if v, ok := update.MonthlyIVADue.Get(); ok {
		queryMods = append(queryMods, um.SetCol("monthly_iva_due").ToArg(v))
	}
	if !update.Notes.IsUnset() {
		queryMods = append(queryMods, um.SetCol("notes").ToArg(update.Notes.Ptr()))
	}
	if len(queryMods) == 1 {
		return nil
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(psql.Quote("id")),
	)

	_, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.SingleColumnMapper[uuid.UUID])
	return translateError(err)
}

func (t *TaxProfilesTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(taxProfilesTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning(psql.Quote("id")),
	)
	_, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	return translateError(err)
}
