package client

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

type ListClientsResponseBody struct {
	Clients []Client `json:"clients" doc:"The caller's clients sorted by name"`
}

type ListClientsOutput struct {
	Body ListClientsResponseBody
}

type clientLister interface {
	ListClients(ctx context.Context, ownerID uuid.UUID) ([]service.Client, error)
}

// ListClientsHandler handles GET /v1/clients.
type ListClientsHandler struct {
	ClientService clientLister
}

func NewListClientsHandler(svc clientLister) *ListClientsHandler {
	return &ListClientsHandler{ClientService: svc}
}

func (h *ListClientsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-clients",
		Method:      http.MethodGet,
		Path:        "/v1/clients",
		Summary:     "List clients",
		Tags:        []string{"Clients"},
	}, h.handle)
}

func (h *ListClientsHandler) handle(ctx context.Context, _ *struct{}) (*ListClientsOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := h.ClientService.ListClients(ctx, ownerID)
	if err != nil {
		return nil, apierr.FromService("failed to list clients", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("clientCount", len(clients))
	}

	resp := ListClientsResponseBody{Clients: make([]Client, len(clients))}
	for i, c := range clients {
		resp.Clients[i] = toResponse(c)
	}
	return &ListClientsOutput{Body: resp}, nil
}
