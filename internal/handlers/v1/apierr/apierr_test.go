package apierr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	require.True(t, errors.As(err, &statusErr))
	return statusErr.GetStatus()
}

func TestFromService(t *testing.T) {
	cases := map[error]int{
		&service.ValidationError{Field: "amount", Reason: "must not be negative"}: http.StatusBadRequest,
		service.ErrNoChanges:                                http.StatusBadRequest,
		service.ErrNotFound:                                 http.StatusNotFound,
		service.ErrForbidden:                                http.StatusForbidden,
		service.ErrKindChanged:                              http.StatusConflict,
		service.ErrAlreadyExists:                            http.StatusConflict,
		operator.ErrStopped:                                 http.StatusServiceUnavailable,
		fmt.Errorf("wrapped: %w", context.DeadlineExceeded): http.StatusInternalServerError,
		&service.StoreUnavailableError{Op: "list", Err: errors.New("refused")}: http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusOf(t, FromService("failed", err)), err.Error())
	}
}
