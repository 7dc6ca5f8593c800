// Package apierr turns service errors into huma status errors.
package apierr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
)

// FromService maps err onto an HTTP status. msg is used for failures the
// caller cannot fix, including store timeouts.
func FromService(msg string, err error) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, service.ErrNoChanges):
		return huma.NewError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "Not found", err)
	case errors.Is(err, service.ErrForbidden):
		return huma.NewError(http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, service.ErrKindChanged):
		return huma.NewError(http.StatusConflict, "Transaction kind cannot be changed", err)
	case errors.Is(err, service.ErrAlreadyExists):
		return huma.NewError(http.StatusConflict, "Already exists", err)
	case errors.Is(err, operator.ErrStopped):
		return huma.NewError(http.StatusServiceUnavailable, "Server is shutting down", err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
