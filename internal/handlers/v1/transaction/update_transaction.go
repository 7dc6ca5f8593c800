package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateTransactionBody replaces every mutable field. Kind may be sent but
// must match the stored kind.
type UpdateTransactionBody struct {
	Kind string `json:"kind,omitempty" doc:"Must equal the stored kind when present"`
	TransactionBody
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, in service.TransactionChanges) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
	Location           *time.Location
}

func NewUpdateTransactionHandler(svc transactionUpdater, loc *time.Location) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc, Location: loc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces the amount, date, tax and text fields. The kind of a transaction never changes.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput, loc *time.Location) (uuid.UUID, service.TransactionChanges, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return uuid.Nil, service.TransactionChanges{}, err
	}
	fields, err := parseTransactionBody(input.Body.TransactionBody, loc)
	if err != nil {
		return uuid.Nil, service.TransactionChanges{}, err
	}
	changes := service.TransactionChanges{TransactionFields: fields}
	if input.Body.Kind != "" {
		kind, err := service.ParseTransactionKind(input.Body.Kind)
		if err != nil {
			return uuid.Nil, service.TransactionChanges{}, huma.NewError(http.StatusBadRequest, "invalid kind", err)
		}
		changes.Kind = &kind
	}
	return id, changes, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, changes, err := parseUpdateTransactionInput(input, h.Location)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.UpdateTransaction(ctx, ownerID, id, changes)
	if err != nil {
		return nil, apierr.FromService("failed to update transaction", err)
	}
	return &TransactionOutput{Body: toResponse(*tx)}, nil
}
