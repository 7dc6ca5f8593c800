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

const clientsTableName = "clients"

var clientColumns = []string{"id", "owner_id", "name", "email", "phone", "created_at"}

var _ IClientTable = (*ClientsTable)(nil)

type ClientsTable struct {
	exec bob.Executor
}

func NewClientsTable(exec bob.Executor) *ClientsTable {
	return &ClientsTable{exec: exec}
}

func (t *ClientsTable) FindByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	q := psql.Select(
		sm.Columns(columns(clientColumns)...),
		sm.From(clientsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Client]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *ClientsTable) Insert(ctx context.Context, create *ClientCreate) (*Client, error) {
	q := psql.Insert(
		im.Into(clientsTableName, "id", "owner_id", "name", "email", "phone"),
		im.Values(args(create.ID, create.OwnerID, create.Name, create.Email, create.Phone)...),
		im.Returning(columns(clientColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Client]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Update writes the set fields of update. An empty update only checks that
// the client exists.
func (t *ClientsTable) Update(ctx context.Context, id uuid.UUID, update *ClientUpdate) error {
	if update.Empty() {
		_, err := t.FindByID(ctx, id)
		return err
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(clientsTableName)}
	if name, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(name))
	}
	if email, ok := update.Email.Get(); ok {
		queryMods = append(queryMods, um.SetCol("email").ToArg(email))
	}
	if !update.Phone.IsUnset() {
		queryMods = append(queryMods, um.SetCol("phone").ToArg(update.Phone.Ptr()))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(psql.Quote("id")),
	)

	_, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.SingleColumnMapper[uuid.UUID])
	return translateError(err)
}

func (t *ClientsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(clientsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning(psql.Quote("id")),
	)
	_, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	return translateError(err)
}

// ListByOwner returns the owner's clients ordered by name.
func (t *ClientsTable) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Client, error) {
	q := psql.Select(
		sm.Columns(columns(clientColumns)...),
		sm.From(clientsTableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Client]())
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}
