package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/storage"
)

var costaRica = time.FixedZone("CST", -6*60*60)

// fixedNow is mid March 2024 in Costa Rica.
var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, costaRica)

func testCalendar() daterange.Calendar {
	return daterange.Calendar{Location: costaRica, WeekStart: time.Sunday}
}

// newTestService wires the services to an in-memory store behind a running
// delegator.
func newTestService(t *testing.T) (*Service, *storage.Storage) {
	t.Helper()
	store := storage.NewMemoryStorage()
	delegator := operator.NewOperatorDelegator(store, 2, 10)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return NewService(store, delegator, testCalendar(), func() time.Time { return fixedNow }), store
}

func day(s string) time.Time {
	d, err := time.ParseInLocation(daterange.DateLayout, s, costaRica)
	if err != nil {
		panic(err)
	}
	return d
}

func newOwner() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func mustCreate(t *testing.T, svc *Service, owner uuid.UUID, kind TransactionKind, amount int64, date string) *Transaction {
	t.Helper()
	tx, err := svc.Transaction.CreateTransaction(context.Background(), owner, NewTransaction{
		Kind: kind,
		TransactionFields: TransactionFields{
			Amount: decimal.NewFromInt(amount),
			HasTax: true,
			Date:   day(date),
		},
	})
	require.NoError(t, err)
	return tx
}
