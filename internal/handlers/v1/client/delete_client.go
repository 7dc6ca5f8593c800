package client

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierr"
)

type clientDeleter interface {
	DeleteClient(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteClientHandler handles DELETE /v1/clients/{id}.
type DeleteClientHandler struct {
	ClientService clientDeleter
}

func NewDeleteClientHandler(svc clientDeleter) *DeleteClientHandler {
	return &DeleteClientHandler{ClientService: svc}
}

func (h *DeleteClientHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-client",
		Method:        http.MethodDelete,
		Path:          "/v1/clients/{id}",
		Summary:       "Delete client",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteClientHandler) handle(ctx context.Context, input *ClientIDInput) (*struct{}, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.ClientService.DeleteClient(ctx, ownerID, id); err != nil {
		return nil, apierr.FromService("failed to delete client", err)
	}
	return nil, nil
}
