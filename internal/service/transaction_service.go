package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic. Reads go straight
// to storage; writes go through the processor.
type TransactionService struct {
	storage   *storage.Storage
	processor Processor
	calendar  daterange.Calendar
	now       Clock
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor Processor, calendar daterange.Calendar, clock Clock) *TransactionService {
	return &TransactionService{storage: store, processor: processor, calendar: calendar, now: clock}
}

// ListTransactions returns the owner's transactions in the range described
// by query, newest first. Unusable bounds fall back to the current month.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, query daterange.Query) (*TransactionList, error) {
	resolution := s.calendar.ParseQuery(query, s.now())

	transactions, err := s.ListInRange(ctx, ownerID, resolution.Range)
	if err != nil {
		return nil, err
	}

	return &TransactionList{Range: resolution, Transactions: transactions}, nil
}

// ListInRange returns the owner's transactions dated within r, both ends
// included.
func (s *TransactionService) ListInRange(ctx context.Context, ownerID uuid.UUID, r daterange.Range) ([]Transaction, error) {
	return listInRange(ctx, s.storage, ownerID, r)
}

// GetTransaction returns ErrNotFound for missing and foreign transactions.
func (s *TransactionService) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, translateError("get transaction", err)
	}
	if row.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	tx := transactionFromStorage(row)
	return &tx, nil
}

// CreateTransaction stores a new transaction owned by ownerID.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, in NewTransaction) (*Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Create: sqlconfig.TransactionCreate{
		ID:          id,
		OwnerID:     ownerID,
		Kind:        kindToStorage(in.Kind),
		Amount:      in.Amount,
		HasTax:      in.HasTax,
		TaxRate:     in.taxRate(),
		Description: optionalText(in.Description),
		Category:    optionalText(in.Category),
		Date:        in.Date,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translateError("create transaction", err)
	}

	tx := transactionFromStorage(action.Result)
	return &tx, nil
}

// UpdateTransaction replaces the mutable fields. The kind never changes.
func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, in TransactionChanges) (*Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{
		ID:      id,
		OwnerID: ownerID,
		Update: sqlconfig.TransactionUpdate{
			Amount:      in.Amount,
			HasTax:      in.HasTax,
			TaxRate:     in.taxRate(),
			Description: optionalText(in.Description),
			Category:    optionalText(in.Category),
			Date:        in.Date,
		},
	}
	if in.Kind != nil {
		kind := kindToStorage(*in.Kind)
		action.Kind = &kind
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translateError("update transaction", err)
	}

	tx := transactionFromStorage(action.Result)
	return &tx, nil
}

// DeleteTransaction returns ErrNotFound for missing and foreign transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.processor.Process(ctx, &actions.DeleteTransaction{ID: id, OwnerID: ownerID})
	return translateError("delete transaction", err)
}

func listInRange(ctx context.Context, store *storage.Storage, ownerID uuid.UUID, r daterange.Range) ([]Transaction, error) {
	from, to := r.From, r.To
	rows, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		OwnerID: ownerID,
		From:    &from,
		To:      &to,
	})
	if err != nil {
		return nil, translateError("list transactions", err)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}
