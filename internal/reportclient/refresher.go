package reportclient

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-server/internal/daterange"
)

// Fetcher is satisfied by *Client.
type Fetcher interface {
	Balance(ctx context.Context, r daterange.Range) (*BalanceReport, error)
	IVA(ctx context.Context, r daterange.Range) (*IVAReport, error)
}

// Update is delivered once per completed refresh. Exactly one of Err or the
// two reports is set.
type Update struct {
	Seq     uint64
	Range   daterange.Range
	Balance *BalanceReport
	IVA     *IVAReport
	Err     error
}

// Refresher re-fetches both reports whenever the selected range changes.
// Only the most recent selection is ever delivered: a new selection cancels
// the request in flight and late responses are dropped.
type Refresher struct {
	fetcher  Fetcher
	calendar daterange.Calendar
	now      func() time.Time
	onUpdate func(Update)

	mu       sync.Mutex
	seq      uint64
	selected daterange.Range
	cancel   context.CancelFunc
	closed   bool

	// deliverMu keeps a superseded update from landing after a newer one.
	deliverMu sync.Mutex
	wg        sync.WaitGroup
}

// NewRefresher creates a Refresher. onUpdate runs on a background goroutine,
// one call at a time, and must not call Close.
func NewRefresher(fetcher Fetcher, calendar daterange.Calendar, now func() time.Time, onUpdate func(Update)) *Refresher {
	if now == nil {
		now = time.Now
	}
	return &Refresher{fetcher: fetcher, calendar: calendar, now: now, onUpdate: onUpdate}
}

// SelectPreset resolves preset against the clock and refreshes. The custom
// preset is rejected; use SelectRange.
func (r *Refresher) SelectPreset(preset daterange.Preset) (uint64, error) {
	rng, err := r.calendar.Resolve(preset, r.now())
	if err != nil {
		return 0, err
	}
	return r.start(rng), nil
}

// SelectRange refreshes for a custom range. An inverted range is rejected
// and the current selection is kept.
func (r *Refresher) SelectRange(from, to time.Time) (uint64, error) {
	rng, err := r.calendar.Custom(from, to)
	if err != nil {
		return 0, err
	}
	return r.start(rng), nil
}

// Refresh fetches the current selection again.
func (r *Refresher) Refresh() uint64 {
	r.mu.Lock()
	rng := r.selected
	r.mu.Unlock()
	return r.start(rng)
}

// Selected returns the current selection.
func (r *Refresher) Selected() daterange.Range {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

// Close cancels the request in flight and waits for it to finish. No
// updates are delivered afterwards.
func (r *Refresher) Close() {
	r.mu.Lock()
	r.closed = true
	if r.cancel != nil {
		r.cancel()
	}
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Refresher) start(rng daterange.Range) uint64 {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0
	}
	if r.cancel != nil {
		r.cancel()
	}
	r.seq++
	seq := r.seq
	r.selected = rng
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		defer cancel()
		r.deliver(r.fetch(ctx, seq, rng))
	}()
	return seq
}

func (r *Refresher) fetch(ctx context.Context, seq uint64, rng daterange.Range) Update {
	update := Update{Seq: seq, Range: rng}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := r.fetcher.Balance(ctx, rng)
		update.Balance = balance
		return err
	})
	g.Go(func() error {
		iva, err := r.fetcher.IVA(ctx, rng)
		update.IVA = iva
		return err
	})
	if err := g.Wait(); err != nil {
		return Update{Seq: seq, Range: rng, Err: err}
	}
	return update
}

func (r *Refresher) deliver(update Update) {
	r.deliverMu.Lock()
	defer r.deliverMu.Unlock()

	r.mu.Lock()
	current := !r.closed && update.Seq == r.seq
	r.mu.Unlock()
	if !current || r.onUpdate == nil {
		return
	}
	r.onUpdate(update)
}
