package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-server/internal/storage"
)

var (
	// ErrForbidden means the record exists but belongs to another owner.
	ErrForbidden = errors.New("record belongs to another owner")
	// ErrKindChanged means an update tried to flip a transaction between
	// income and expense.
	ErrKindChanged = errors.New("transaction kind cannot be changed")
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
