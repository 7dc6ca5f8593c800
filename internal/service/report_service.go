package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/report"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Report is a computed report plus the range it covers.
type Report struct {
	Range daterange.Range
	// Period is set when the caller asked with the month/year form.
	Period    *daterange.Period
	Defaulted bool
	Result    report.Result
	// Count is the number of transactions folded into Result.
	Count int
}

// ReportService computes reports on demand. Nothing is cached.
type ReportService struct {
	storage  *storage.Storage
	calendar daterange.Calendar
	now      Clock
}

func NewReportService(store *storage.Storage, calendar daterange.Calendar, clock Clock) *ReportService {
	return &ReportService{storage: store, calendar: calendar, now: clock}
}

// Generate resolves the range, loads the owner's transactions in it and
// runs the report. A store failure yields a *StoreUnavailableError and no
// report.
func (s *ReportService) Generate(ctx context.Context, ownerID uuid.UUID, kind report.Kind, query daterange.Query) (*Report, error) {
	resolution := s.calendar.ParseQuery(query, s.now())

	transactions, err := listInRange(ctx, s.storage, ownerID, resolution.Range)
	if err != nil {
		return nil, err
	}

	movements := make([]report.Movement, len(transactions))
	for i, tx := range transactions {
		movements[i] = tx.Movement()
	}

	result, err := report.Compute(kind, movements)
	if err != nil {
		return nil, &ValidationError{Field: "kind", Reason: err.Error()}
	}

	return &Report{
		Range:     resolution.Range,
		Period:    resolution.Period,
		Defaulted: resolution.Defaulted,
		Result:    result,
		Count:     len(transactions),
	}, nil
}
