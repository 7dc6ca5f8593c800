package service

import (
	"context"
	"time"

	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Processor runs a write action inside a storage transaction.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Clock returns the current instant.
type Clock func() time.Time

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Report      *ReportService
	Client      *ClientService
	TaxProfile  *TaxProfileService
}

// NewService wires every service to the same storage, write processor,
// calendar and clock. A nil clock means time.Now.
func NewService(store *storage.Storage, processor Processor, calendar daterange.Calendar, clock Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		Transaction: NewTransactionService(store, processor, calendar, clock),
		Report:      NewReportService(store, calendar, clock),
		Client:      NewClientService(store, processor),
		TaxProfile:  NewTaxProfileService(store, processor),
	}
}
