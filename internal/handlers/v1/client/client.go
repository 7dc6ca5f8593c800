package client

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
)

// Client is the API response model for a client.
type Client struct {
	ID        string  `json:"id" doc:"Client UUID"`
	Name      string  `json:"name" doc:"Client name"`
	Email     string  `json:"email" format:"email" doc:"Contact email"`
	Phone     *string `json:"phone,omitempty" doc:"Contact phone"`
	CreatedAt string  `json:"createdAt" format:"date-time" doc:"RFC3339 creation time"`
}

type ClientOutput struct {
	Body Client
}

func toResponse(c service.Client) Client {
	return Client{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid client id", err)
	}
	return id, nil
}
