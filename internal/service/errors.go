package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrKindChanged   = actions.ErrKindChanged
	ErrAlreadyExists = errors.New("already exists")
	ErrNoChanges     = errors.New("no fields to update")
)

// ValidationError rejects a field value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// StoreUnavailableError wraps a persistence failure. No partial result is
// ever returned alongside it.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// translateError maps storage and action errors onto the service errors.
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sqlconfig.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, actions.ErrForbidden):
		return ErrForbidden
	case errors.Is(err, actions.ErrKindChanged):
		return ErrKindChanged
	case errors.Is(err, sqlconfig.ErrDuplicate):
		return ErrAlreadyExists
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return &StoreUnavailableError{Op: op, Err: err}
	}
}
