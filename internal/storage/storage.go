package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/memory"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Storage exposes the tables for reads and opens Writers for transactional
// writes.
type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Clients      sqlconfig.IClientTable
	TaxProfiles  sqlconfig.ITaxProfileTable

	begin func(ctx context.Context) (*Writer, error)
	ping  func(ctx context.Context) error
}

// NewStorage opens a PostgreSQL backed Storage. The connection is lazy;
// use Ping to check it.
func NewStorage(cfg config.Postgres) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Clients:      sqlconfig.NewClientsTable(exec),
		TaxProfiles:  sqlconfig.NewTaxProfilesTable(exec),
		begin: func(ctx context.Context) (*Writer, error) {
			tx, err := exec.BeginTx(ctx, nil)
			if err != nil {
				return nil, fmt.Errorf("begin transaction: %w", err)
			}
			return NewWriter(tx,
				sqlconfig.NewTransactionsTable(tx),
				sqlconfig.NewClientsTable(tx),
				sqlconfig.NewTaxProfilesTable(tx),
			), nil
		},
		ping: db.PingContext,
	}, nil
}

// NewMemoryStorage returns a Storage kept entirely in process memory.
func NewMemoryStorage(opts ...memory.Option) *Storage {
	store := memory.NewStore(opts...)
	return &Storage{
		Transactions: store.Transactions(),
		Clients:      store.Clients(),
		TaxProfiles:  store.TaxProfiles(),
		begin: func(ctx context.Context) (*Writer, error) {
			tx, err := store.Begin(ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(tx, tx.Transactions(), tx.Clients(), tx.TaxProfiles()), nil
		},
		ping: func(context.Context) error { return nil },
	}
}

// Write opens a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if s.begin == nil {
		return nil, fmt.Errorf("storage: writes not configured")
	}
	return s.begin(ctx)
}

// Ping reports whether the backing store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
