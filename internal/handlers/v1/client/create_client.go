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

type CreateClientBody struct {
	Name  string  `json:"name" required:"true" minLength:"1" doc:"Client name"`
	Email string  `json:"email" required:"true" doc:"Contact email"`
	Phone *string `json:"phone,omitempty" doc:"Contact phone"`
}

type CreateClientInput struct {
	Body CreateClientBody
}

type CreateClientOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   Client
}

type clientCreator interface {
	CreateClient(ctx context.Context, ownerID uuid.UUID, in service.NewClient) (*service.Client, error)
}

// CreateClientHandler handles POST /v1/clients.
type CreateClientHandler struct {
	ClientService clientCreator
}

func NewCreateClientHandler(svc clientCreator) *CreateClientHandler {
	return &CreateClientHandler{ClientService: svc}
}

func (h *CreateClientHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-client",
		Method:        http.MethodPost,
		Path:          "/v1/clients",
		Summary:       "Create client",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateClientHandler) handle(ctx context.Context, input *CreateClientInput) (*CreateClientOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}

	c, err := h.ClientService.CreateClient(ctx, ownerID, service.NewClient{
		Name:  input.Body.Name,
		Email: input.Body.Email,
		Phone: input.Body.Phone,
	})
	if err != nil {
		return nil, apierr.FromService("failed to create client", err)
	}
	return &CreateClientOutput{Status: http.StatusCreated, Body: toResponse(*c)}, nil
}
