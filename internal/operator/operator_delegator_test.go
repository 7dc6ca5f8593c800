package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type funcAction func(ctx context.Context, writer *storage.Writer) error

func (f funcAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func newTestDelegator(t *testing.T) (*OperatorDelegator, *storage.Storage) {
	t.Helper()
	store := storage.NewMemoryStorage()
	d := NewOperatorDelegator(store, 2, 10)
	d.Start()
	t.Cleanup(d.Stop)
	return d, store
}

func createAction(owner uuid.UUID) *actions.CreateTransaction {
	return &actions.CreateTransaction{Create: sqlconfig.TransactionCreate{
		ID:      uuid.Must(uuid.NewV4()),
		OwnerID: owner,
		Kind:    sqlconfig.TransactionKindIncome,
		Amount:  decimal.NewFromInt(100),
		Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	d, store := newTestDelegator(t)
	action := createAction(uuid.Must(uuid.NewV4()))

	err := d.Process(context.Background(), action)

	require.NoError(t, err)
	require.NotNil(t, action.Result)
	_, err = store.Transactions.FindByID(context.Background(), action.Result.ID)
	assert.NoError(t, err)
}

func TestProcess_RollsBackOnError(t *testing.T) {
	d, store := newTestDelegator(t)
	owner := uuid.Must(uuid.NewV4())
	insert := createAction(owner)
	boom := errors.New("boom")

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, w *storage.Writer) error {
		if err := insert.Perform(ctx, w); err != nil {
			return err
		}
		return boom
	}))

	assert.ErrorIs(t, err, boom)
	_, err = store.Transactions.FindByID(context.Background(), insert.Create.ID)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestProcess_ConcurrentWriters(t *testing.T) {
	d, store := newTestDelegator(t)
	owner := uuid.Must(uuid.NewV4())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), createAction(owner)))
		}()
	}
	wg.Wait()

	rows, err := store.Transactions.List(context.Background(), &sqlconfig.TransactionFilter{OwnerID: owner})
	require.NoError(t, err)
	assert.Len(t, rows, 20)
}

func TestProcess_CancelledContext(t *testing.T) {
	d, _ := newTestDelegator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, createAction(uuid.Must(uuid.NewV4())))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(storage.NewMemoryStorage(), 1, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), createAction(uuid.Must(uuid.NewV4())))

	assert.ErrorIs(t, err, ErrStopped)
}
