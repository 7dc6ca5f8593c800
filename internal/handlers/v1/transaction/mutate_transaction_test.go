package transaction

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
)

func newMutateTestAPI(t *testing.T, svc *mockTransactionService, owner uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(withOwner(owner))
	NewGetTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc, time.UTC).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	tx := sampleTransaction(owner)
	missing := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransaction", mock.Anything, owner, tx.ID).Return(tx, nil)
	mockSvc.On("GetTransaction", mock.Anything, owner, missing).Return(nil, service.ErrNotFound)
	api := newMutateTestAPI(t, mockSvc, owner)

	assert.Equal(t, http.StatusOK, api.Get("/v1/transactions/"+tx.ID.String()).Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/v1/transactions/"+missing.String()).Code)
	assert.Equal(t, http.StatusBadRequest, api.Get("/v1/transactions/not-a-uuid").Code)
}

func TestHTTP_UpdateTransaction_KindChange(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, owner, id, mock.MatchedBy(func(in service.TransactionChanges) bool {
		return in.Kind != nil && *in.Kind == service.TransactionKindExpense
	})).Return(nil, service.ErrKindChanged)

	resp := newMutateTestAPI(t, mockSvc, owner).Put("/v1/transactions/"+id.String(), map[string]any{
		"kind":   "expense",
		"amount": "10",
		"date":   "2024-03-05",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	tx := sampleTransaction(owner)

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, owner, tx.ID, mock.MatchedBy(func(in service.TransactionChanges) bool {
		return in.Kind == nil && in.HasTax
	})).Return(tx, nil)

	resp := newMutateTestAPI(t, mockSvc, owner).Put("/v1/transactions/"+tx.ID.String(), map[string]any{
		"amount": "11300",
		"date":   "2024-03-05",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	foreign := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, owner, id).Return(nil)
	mockSvc.On("DeleteTransaction", mock.Anything, owner, foreign).Return(service.ErrNotFound)
	api := newMutateTestAPI(t, mockSvc, owner)

	assert.Equal(t, http.StatusNoContent, api.Delete("/v1/transactions/"+id.String()).Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/v1/transactions/"+foreign.String()).Code)
}
