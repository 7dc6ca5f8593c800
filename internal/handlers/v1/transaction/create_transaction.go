package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Kind string `json:"kind" required:"true" doc:"income or expense (ingreso and egreso are accepted)"`
	TransactionBody
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, ownerID uuid.UUID, in service.NewTransaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	Location           *time.Location
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler. Dates
// in requests are read in loc.
func NewCreateTransactionHandler(svc transactionCreator, loc *time.Location) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, Location: loc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Creates a new income or expense for the caller.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput, loc *time.Location) (service.NewTransaction, error) {
	kind, err := service.ParseTransactionKind(input.Body.Kind)
	if err != nil {
		return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid kind", err)
	}
	fields, err := parseTransactionBody(input.Body.TransactionBody, loc)
	if err != nil {
		return service.NewTransaction{}, err
	}
	return service.NewTransaction{Kind: kind, TransactionFields: fields}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	newTx, err := parseCreateTransactionInput(input, h.Location)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.CreateTransaction(ctx, ownerID, newTx)
	if err != nil {
		return nil, apierr.FromService("failed to create transaction", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", tx.ID.String())
	}

	return &CreateTransactionOutput{Status: http.StatusCreated, Body: toResponse(*tx)}, nil
}
