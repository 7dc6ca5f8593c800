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

// UpdateClientBody changes only the fields present. An empty phone clears it.
type UpdateClientBody struct {
	Name  *string `json:"name,omitempty" doc:"Client name"`
	Email *string `json:"email,omitempty" doc:"Contact email"`
	Phone *string `json:"phone,omitempty" doc:"Contact phone, empty to clear"`
}

type UpdateClientInput struct {
	ID   string `path:"id" doc:"Client UUID"`
	Body UpdateClientBody
}

type clientUpdater interface {
	UpdateClient(ctx context.Context, ownerID, id uuid.UUID, in service.ClientChanges) (*service.Client, error)
}

// UpdateClientHandler handles PUT /v1/clients/{id}.
type UpdateClientHandler struct {
	ClientService clientUpdater
}

func NewUpdateClientHandler(svc clientUpdater) *UpdateClientHandler {
	return &UpdateClientHandler{ClientService: svc}
}

func (h *UpdateClientHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-client",
		Method:      http.MethodPut,
		Path:        "/v1/clients/{id}",
		Summary:     "Update client",
		Tags:        []string{"Clients"},
	}, h.handle)
}

func (h *UpdateClientHandler) handle(ctx context.Context, input *UpdateClientInput) (*ClientOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	c, err := h.ClientService.UpdateClient(ctx, ownerID, id, service.ClientChanges{
		Name:  input.Body.Name,
		Email: input.Body.Email,
		Phone: input.Body.Phone,
	})
	if err != nil {
		return nil, apierr.FromService("failed to update client", err)
	}
	return &ClientOutput{Body: toResponse(*c)}, nil
}
