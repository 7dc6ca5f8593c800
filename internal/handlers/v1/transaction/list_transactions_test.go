package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/service"
)

func newListTestAPI(t *testing.T, svc transactionLister, owner uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if owner != uuid.Nil {
		api.UseMiddleware(withOwner(owner))
	}
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func march2024() daterange.Range {
	return daterange.DefaultCalendar().Month(2024, time.March)
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	tx := sampleTransaction(owner)

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, owner, daterange.Query{From: "2024-03-01", To: "2024-03-31"}).
		Return(&service.TransactionList{
			Range:        daterange.Resolution{Range: march2024()},
			Transactions: []service.Transaction{*tx},
		}, nil)

	resp := newListTestAPI(t, mockSvc, owner).Get("/v1/transactions?from=2024-03-01&to=2024-03-31")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-03-01", body.From)
	assert.Equal(t, "2024-03-31", body.To)
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, tx.ID.String(), body.Transactions[0].ID)
	assert.Equal(t, "income", body.Transactions[0].Kind)
	assert.Equal(t, "11300", body.Transactions[0].Amount)
	assert.Equal(t, "2024-03-05", body.Transactions[0].Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, owner, daterange.Query{}).
		Return(&service.TransactionList{Range: daterange.Resolution{Range: march2024(), Defaulted: true}}, nil)

	resp := newListTestAPI(t, mockSvc, owner).Get("/v1/transactions")

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []any{}, body["transactions"])
}

func TestHTTP_ListTransactions_StoreUnavailable(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, owner, mock.Anything).
		Return(nil, &service.StoreUnavailableError{Op: "list transactions", Err: errors.New("db down")})

	resp := newListTestAPI(t, mockSvc, owner).Get("/v1/transactions")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_ListTransactions_Unauthenticated(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newListTestAPI(t, mockSvc, uuid.Nil).Get("/v1/transactions")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}
