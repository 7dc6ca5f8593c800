package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	From string `query:"from" doc:"First day, YYYY-MM-DD; defaults to the start of the current month"`
	To   string `query:"to" doc:"Last day, YYYY-MM-DD; defaults to the end of the current month"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	From         string        `json:"from" format:"date" doc:"Effective first day"`
	To           string        `json:"to" format:"date" doc:"Effective last day"`
	Transactions []Transaction `json:"transactions" doc:"Transactions in the range, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, ownerID uuid.UUID, query daterange.Query) (*service.TransactionList, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions dated within the range, newest first. Missing or unusable bounds fall back to the current month.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	list, err := h.TransactionService.ListTransactions(ctx, ownerID, daterange.Query{From: input.From, To: input.To})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService("failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(list.Transactions))
		if list.Range.Err != nil {
			logData.AddData("rangeFallback", list.Range.Err.Error())
		}
	}

	resp := ListTransactionsResponseBody{
		From:         list.Range.Range.FromDate(),
		To:           list.Range.Range.ToDate(),
		Transactions: make([]Transaction, len(list.Transactions)),
	}
	for i, tx := range list.Transactions {
		resp.Transactions[i] = toResponse(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
