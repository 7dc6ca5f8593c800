package client

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-server/internal/service"
)

type ClientIDInput struct {
	ID string `path:"id" doc:"Client UUID"`
}

type clientGetter interface {
	GetClient(ctx context.Context, ownerID, id uuid.UUID) (*service.Client, error)
}

// GetClientHandler handles GET /v1/clients/{id}.
type GetClientHandler struct {
	ClientService clientGetter
}

func NewGetClientHandler(svc clientGetter) *GetClientHandler {
	return &GetClientHandler{ClientService: svc}
}

func (h *GetClientHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-client",
		Method:      http.MethodGet,
		Path:        "/v1/clients/{id}",
		Summary:     "Get client",
		Tags:        []string{"Clients"},
	}, h.handle)
}

func (h *GetClientHandler) handle(ctx context.Context, input *ClientIDInput) (*ClientOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	c, err := h.ClientService.GetClient(ctx, ownerID, id)
	if err != nil {
		return nil, apierr.FromService("failed to get client", err)
	}
	return &ClientOutput{Body: toResponse(*c)}, nil
}
