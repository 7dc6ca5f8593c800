package transaction

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/service"
)

// mockTransactionService satisfies every handler interface in the package.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, query daterange.Query) (*service.TransactionList, error) {
	args := m.Called(ctx, ownerID, query)
	list, _ := args.Get(0).(*service.TransactionList)
	return list, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, in service.NewTransaction) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, in)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, in service.TransactionChanges) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, id, in)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

// withOwner authenticates every request as owner.
func withOwner(owner uuid.UUID) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.ContextWithIdentity(ctx.Context(), auth.Identity{OwnerID: owner})))
	}
}

func sampleTransaction(owner uuid.UUID) *service.Transaction {
	return &service.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		OwnerID:     owner,
		Kind:        service.TransactionKindIncome,
		Amount:      decimal.RequireFromString("11300"),
		HasTax:      true,
		TaxRate:     decimal.NewFromInt(13),
		Description: "Factura 001",
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
	}
}
