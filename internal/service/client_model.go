package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Client represents a client of the owner in the service layer.
type Client struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

// NewClient is the input for creating a client.
type NewClient struct {
	Name  string
	Email string
	Phone *string
}

// ClientChanges is a partial update; nil fields stay as they are. An empty
// Phone clears it.
type ClientChanges struct {
	Name  *string
	Email *string
	Phone *string
}

func (c ClientChanges) empty() bool {
	return c.Name == nil && c.Email == nil && c.Phone == nil
}

func validateClientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	return nil
}

func validateClientEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

func clientFromStorage(row *sqlconfig.Client) Client {
	return Client{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone.Ptr(),
		CreatedAt: row.CreatedAt,
	}
}
