package reportclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/daterange"
)

// gatedFetcher blocks requests for ranges listed in gates until the gate is
// closed or the request is cancelled.
type gatedFetcher struct {
	mu        sync.Mutex
	gates     map[string]chan struct{}
	cancelled []string
}

func (f *gatedFetcher) wait(ctx context.Context, r daterange.Range) error {
	f.mu.Lock()
	gate := f.gates[r.FromDate()]
	f.mu.Unlock()
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		f.mu.Lock()
		f.cancelled = append(f.cancelled, r.FromDate())
		f.mu.Unlock()
		return ctx.Err()
	}
}

func (f *gatedFetcher) Balance(ctx context.Context, r daterange.Range) (*BalanceReport, error) {
	if err := f.wait(ctx, r); err != nil {
		return nil, err
	}
	return &BalanceReport{From: r.FromDate(), To: r.ToDate(), Income: 1}, nil
}

func (f *gatedFetcher) IVA(ctx context.Context, r daterange.Range) (*IVAReport, error) {
	if err := f.wait(ctx, r); err != nil {
		return nil, err
	}
	return &IVAReport{From: r.FromDate(), To: r.ToDate()}, nil
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func collect() (func(Update), func() []Update) {
	var mu sync.Mutex
	var updates []Update
	return func(u Update) {
			mu.Lock()
			defer mu.Unlock()
			updates = append(updates, u)
		}, func() []Update {
			mu.Lock()
			defer mu.Unlock()
			return append([]Update(nil), updates...)
		}
}

func TestRefresher_DeliversSelection(t *testing.T) {
	onUpdate, updates := collect()
	r := NewRefresher(&gatedFetcher{}, daterange.DefaultCalendar(), fixedClock, onUpdate)

	defer r.Close()

	seq, err := r.SelectPreset(daterange.PresetMonth)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(updates()) == 1 }, time.Second, 5*time.Millisecond)
	got := updates()
	assert.Equal(t, seq, got[0].Seq)
	assert.NoError(t, got[0].Err)
	assert.Equal(t, "2024-03-01", got[0].Balance.From)
	assert.Equal(t, "2024-03-31", got[0].IVA.To)
}

func TestRefresher_SupersededRequestIsCancelledAndDropped(t *testing.T) {
	slow := make(chan struct{})
	fetcher := &gatedFetcher{gates: map[string]chan struct{}{"2024-01-01": slow}}
	onUpdate, updates := collect()
	r := NewRefresher(fetcher, daterange.DefaultCalendar(), fixedClock, onUpdate)

	_, err := r.SelectPreset(daterange.PresetYear)
	require.NoError(t, err)
	latest, err := r.SelectPreset(daterange.PresetToday)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(updates()) == 1 }, time.Second, 5*time.Millisecond)
	close(slow)
	r.Close()

	got := updates()
	require.Len(t, got, 1)
	assert.Equal(t, latest, got[0].Seq)
	assert.Equal(t, "2024-03-15", got[0].Range.FromDate())
	fetcher.mu.Lock()
	assert.Contains(t, fetcher.cancelled, "2024-01-01")
	fetcher.mu.Unlock()
}

func TestRefresher_InvertedRangeKeepsSelection(t *testing.T) {
	onUpdate, updates := collect()
	r := NewRefresher(&gatedFetcher{}, daterange.DefaultCalendar(), fixedClock, onUpdate)
	defer r.Close()
	_, err := r.SelectPreset(daterange.PresetMonth)
	require.NoError(t, err)

	_, err = r.SelectRange(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	var invalid *daterange.InvalidRangeError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, "2024-03-01", r.Selected().FromDate())
	require.Eventually(t, func() bool { return len(updates()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestRefresher_NoUpdatesAfterClose(t *testing.T) {
	gate := make(chan struct{})
	onUpdate, updates := collect()
	r := NewRefresher(&gatedFetcher{gates: map[string]chan struct{}{"2024-03-01": gate}}, daterange.DefaultCalendar(), fixedClock, onUpdate)

	_, err := r.SelectPreset(daterange.PresetMonth)
	require.NoError(t, err)
	r.Close()
	close(gate)

	assert.Empty(t, updates())
	assert.Zero(t, r.Refresh())
}
