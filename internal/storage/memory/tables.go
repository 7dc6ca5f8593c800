package memory

import (
	"context"
	"sort"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var (
	_ sqlconfig.ITransactionTable = (*TransactionsTable)(nil)
	_ sqlconfig.IClientTable      = (*ClientsTable)(nil)
	_ sqlconfig.ITaxProfileTable  = (*TaxProfilesTable)(nil)
)

// -- transactions --

type TransactionsTable struct {
	src source
}

func (t *TransactionsTable) FindByID(_ context.Context, id uuid.UUID) (*sqlconfig.Transaction, error) {
	var (
		row sqlconfig.Transaction
		ok  bool
	)
	t.src.view(func(d *dataset) {
		row, ok = d.transactions[id]
	})
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	return &row, nil
}

func (t *TransactionsTable) Insert(_ context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	row := sqlconfig.Transaction{
		ID:          create.ID,
		OwnerID:     create.OwnerID,
		Kind:        create.Kind,
		Amount:      create.Amount,
		HasTax:      create.HasTax,
		TaxRate:     create.TaxRate,
		Description: create.Description,
		Category:    create.Category,
		Date:        civil(create.Date),
		CreatedAt:   t.src.now(),
	}
	err := t.src.update(func(d *dataset) error {
		if _, exists := d.transactions[row.ID]; exists {
			return sqlconfig.ErrDuplicate
		}
		d.transactions[row.ID] = row
		d.stamp(row.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *TransactionsTable) Update(_ context.Context, id uuid.UUID, update *sqlconfig.TransactionUpdate) error {
	return t.src.update(func(d *dataset) error {
		row, ok := d.transactions[id]
		if !ok {
			return sqlconfig.ErrNotFound
		}
		row.Amount = update.Amount
		row.HasTax = update.HasTax
		row.TaxRate = update.TaxRate
		row.Description = update.Description
		row.Category = update.Category
		row.Date = civil(update.Date)
		d.transactions[id] = row
		return nil
	})
}

func (t *TransactionsTable) Delete(_ context.Context, id uuid.UUID) error {
	return t.src.update(func(d *dataset) error {
		if _, ok := d.transactions[id]; !ok {
			return sqlconfig.ErrNotFound
		}
		delete(d.transactions, id)
		delete(d.seq, id)
		return nil
	})
}

func (t *TransactionsTable) List(_ context.Context, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	var from, to string
	if filter.From != nil {
		from = filter.From.Format(sqlconfig.DateLayout)
	}
	if filter.To != nil {
		to = filter.To.Format(sqlconfig.DateLayout)
	}

	type ranked struct {
		row sqlconfig.Transaction
		seq int64
	}
	var matches []ranked
	t.src.view(func(d *dataset) {
		for id, row := range d.transactions {
			if row.OwnerID != filter.OwnerID {
				continue
			}
			day := row.Date.Format(sqlconfig.DateLayout)
			if from != "" && day < from {
				continue
			}
			if to != "" && day > to {
				continue
			}
			matches = append(matches, ranked{row: row, seq: d.seq[id]})
		}
	})

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if !a.row.CreatedAt.Equal(b.row.CreatedAt) {
			return a.row.CreatedAt.After(b.row.CreatedAt)
		}
		return a.seq > b.seq
	})
	if filter.Limit > 0 && len(matches) > filter.Limit {
		matches = matches[:filter.Limit]
	}

	rows := make([]*sqlconfig.Transaction, len(matches))
	for i := range matches {
		rows[i] = &matches[i].row
	}
	return rows, nil
}

// -- clients --

type ClientsTable struct {
	src source
}

func (t *ClientsTable) FindByID(_ context.Context, id uuid.UUID) (*sqlconfig.Client, error) {
	var (
		row sqlconfig.Client
		ok  bool
	)
	t.src.view(func(d *dataset) {
		row, ok = d.clients[id]
	})
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	return &row, nil
}

func (t *ClientsTable) Insert(_ context.Context, create *sqlconfig.ClientCreate) (*sqlconfig.Client, error) {
	row := sqlconfig.Client{
		ID:        create.ID,
		OwnerID:   create.OwnerID,
		Name:      create.Name,
		Email:     create.Email,
		Phone:     create.Phone,
		CreatedAt: t.src.now(),
	}
	err := t.src.update(func(d *dataset) error {
		if _, exists := d.clients[row.ID]; exists {
			return sqlconfig.ErrDuplicate
		}
		d.clients[row.ID] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *ClientsTable) Update(_ context.Context, id uuid.UUID, update *sqlconfig.ClientUpdate) error {
	return t.src.update(func(d *dataset) error {
		row, ok := d.clients[id]
		if !ok {
			return sqlconfig.ErrNotFound
		}
		if v, set := update.Name.Get(); set {
			row.Name = v
		}
		if v, set := update.Email.Get(); set {
			row.Email = v
		}
		if !update.Phone.IsUnset() {
			row.Phone = null.FromPtr(update.Phone.Ptr())
		}
		d.clients[id] = row
		return nil
	})
}

func (t *ClientsTable) Delete(_ context.Context, id uuid.UUID) error {
	return t.src.update(func(d *dataset) error {
		if _, ok := d.clients[id]; !ok {
			return sqlconfig.ErrNotFound
		}
		delete(d.clients, id)
		return nil
	})
}

func (t *ClientsTable) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*sqlconfig.Client, error) {
	var rows []*sqlconfig.Client
	t.src.view(func(d *dataset) {
		for _, row := range d.clients {
			if row.OwnerID == ownerID {
				row := row
				rows = append(rows, &row)
			}
		}
	})
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID.String() < rows[j].ID.String()
	})
	return rows, nil
}

// -- tax profiles --

type TaxProfilesTable struct {
	src source
}

func (t *TaxProfilesTable) FindByOwner(_ context.Context, ownerID uuid.UUID) (*sqlconfig.TaxProfile, error) {
	var found *sqlconfig.TaxProfile
	t.src.view(func(d *dataset) {
		for _, row := range d.taxProfiles {
			if row.OwnerID == ownerID {
				row := row
				found = &row
				return
			}
		}
	})
	if found == nil {
		return nil, sqlconfig.ErrNotFound
	}
	return found, nil
}

func (t *TaxProfilesTable) Insert(_ context.Context, create *sqlconfig.TaxProfileCreate) (*sqlconfig.TaxProfile, error) {
	row := sqlconfig.TaxProfile{
		ID:              create.ID,
		OwnerID:         create.OwnerID,
		ContributorType: create.ContributorType,
		PaysIVA:         create.PaysIVA,
		PaysRenta:       create.PaysRenta,
		MonthlyIVADue:   create.MonthlyIVADue,
		Notes:           create.Notes,
		CreatedAt:       t.src.now(),
	}
	err := t.src.update(func(d *dataset) error {
		for _, existing := range d.taxProfiles {
			if existing.OwnerID == row.OwnerID {
				return sqlconfig.ErrDuplicate
			}
		}
		d.taxProfiles[row.ID] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *TaxProfilesTable) Update(_ context.Context, id uuid.UUID, update *sqlconfig.TaxProfileUpdate) error {
	return t.src.update(func(d *dataset) error {
		row, ok := d.taxProfiles[id]
		if !ok {
			return sqlconfig.ErrNotFound
		}
		if v, set := update.ContributorType.Get(); set {
			row.ContributorType = v
		}
		if v, set := update.PaysIVA.Get(); set {
			row.PaysIVA = v
		}
		if v, set := update.PaysRenta.Get(); set {
			row.PaysRenta = v
		}
		if v, set := update.MonthlyIVADue.Get(); set {
			row.MonthlyIVADue = v
		}
		if !update.Notes.IsUnset() {
			row.Notes = null.FromPtr(update.Notes.Ptr())
		}
		d.taxProfiles[id] = row
		return nil
	})
}

func (t *TaxProfilesTable) Delete(_ context.Context, id uuid.UUID) error {
	return t.src.update(func(d *dataset) error {
		if _, ok := d.taxProfiles[id]; !ok {
			return sqlconfig.ErrNotFound
		}
		delete(d.taxProfiles, id)
		return nil
	})
}
