// Package memory is an in-process implementation of the sqlconfig tables.
// It backs local development and tests that need real query semantics
// without a database.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ErrTxDone is returned when a finished transaction is used again.
var ErrTxDone = errors.New("memory: transaction already committed or rolled back")

type dataset struct {
	transactions map[uuid.UUID]sqlconfig.Transaction
	clients      map[uuid.UUID]sqlconfig.Client
	taxProfiles  map[uuid.UUID]sqlconfig.TaxProfile
	// seq records insertion order so rows created in the same instant
	// still list newest first.
	seq     map[uuid.UUID]int64
	nextSeq int64
}

func newDataset() *dataset {
	return &dataset{
		transactions: make(map[uuid.UUID]sqlconfig.Transaction),
		clients:      make(map[uuid.UUID]sqlconfig.Client),
		taxProfiles:  make(map[uuid.UUID]sqlconfig.TaxProfile),
		seq:          make(map[uuid.UUID]int64),
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		transactions: make(map[uuid.UUID]sqlconfig.Transaction, len(d.transactions)),
		clients:      make(map[uuid.UUID]sqlconfig.Client, len(d.clients)),
		taxProfiles:  make(map[uuid.UUID]sqlconfig.TaxProfile, len(d.taxProfiles)),
		seq:          make(map[uuid.UUID]int64, len(d.seq)),
		nextSeq:      d.nextSeq,
	}
	for k, v := range d.transactions {
		c.transactions[k] = v
	}
	for k, v := range d.clients {
		c.clients[k] = v
	}
	for k, v := range d.taxProfiles {
		c.taxProfiles[k] = v
	}
	for k, v := range d.seq {
		c.seq[k] = v
	}
	return c
}

func (d *dataset) stamp(id uuid.UUID) {
	d.nextSeq++
	d.seq[id] = d.nextSeq
}

// source is where a table reads and writes: the committed store or an open
// transaction's private copy.
type source interface {
	view(fn func(d *dataset))
	update(fn func(d *dataset) error) error
	now() time.Time
}

// Store holds committed data. Writers are serialized; readers never block
// on an open transaction.
type Store struct {
	mu    sync.RWMutex
	data  *dataset
	write chan struct{}
	clock func() time.Time
}

type Option func(*Store)

// WithClock overrides the clock used for created_at.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		data:  newDataset(),
		write: make(chan struct{}, 1),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Transactions() *TransactionsTable { return &TransactionsTable{src: s} }
func (s *Store) Clients() *ClientsTable           { return &ClientsTable{src: s} }
func (s *Store) TaxProfiles() *TaxProfilesTable   { return &TaxProfilesTable{src: s} }

// Begin opens a transaction, waiting for any other writer to finish.
func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	select {
	case s.write <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	data := s.data.clone()
	s.mu.RUnlock()

	return &Tx{store: s, data: data}, nil
}

func (s *Store) view(fn func(d *dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

func (s *Store) update(fn func(d *dataset) error) error {
	s.write <- struct{}{}
	defer func() { <-s.write }()

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func (s *Store) now() time.Time {
	return s.clock().UTC()
}

// Tx works on a private copy of the data that replaces the committed data
// on Commit.
type Tx struct {
	store *Store
	data  *dataset
	done  bool
}

func (tx *Tx) Transactions() *TransactionsTable { return &TransactionsTable{src: tx} }
func (tx *Tx) Clients() *ClientsTable           { return &ClientsTable{src: tx} }
func (tx *Tx) TaxProfiles() *TaxProfilesTable   { return &TaxProfilesTable{src: tx} }

func (tx *Tx) Commit(_ context.Context) error {
	if tx.done {
		return ErrTxDone
	}
	tx.done = true

	tx.store.mu.Lock()
	tx.store.data = tx.data
	tx.store.mu.Unlock()

	<-tx.store.write
	return nil
}

func (tx *Tx) Rollback(_ context.Context) error {
	if tx.done {
		return ErrTxDone
	}
	tx.done = true
	<-tx.store.write
	return nil
}

func (tx *Tx) view(fn func(d *dataset)) {
	fn(tx.data)
}

func (tx *Tx) update(fn func(d *dataset) error) error {
	if tx.done {
		return ErrTxDone
	}
	return fn(tx.data)
}

func (tx *Tx) now() time.Time {
	return tx.store.now()
}

// civil keeps only the calendar day of t, read in t's own location.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
