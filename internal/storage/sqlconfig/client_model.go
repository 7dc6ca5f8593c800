package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
)

// Client represents a client record.
type Client struct {
	ID        uuid.UUID        `db:"id"`
	OwnerID   uuid.UUID        `db:"owner_id"`
	Name      string           `db:"name"`
	Email     string           `db:"email"`
	Phone     null.Val[string] `db:"phone"`
	CreatedAt time.Time        `db:"created_at"`
}

// ClientCreate is the input for creating a new client.
type ClientCreate struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Email   string
	Phone   null.Val[string]
}

// ClientUpdate carries only the fields being changed.
type ClientUpdate struct {
	Name  omit.Val[string]
	Email omit.Val[string]
	Phone omitnull.Val[string]
}

// Empty reports whether the update changes nothing.
func (u *ClientUpdate) Empty() bool {
	return u.Name.IsUnset() && u.Email.IsUnset() && u.Phone.IsUnset()
}

//go:generate mockery --name IClientTable --inpackage --with-expecter --filename mock_IClientTable.go
type IClientTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	Insert(ctx context.Context, create *ClientCreate) (*Client, error)
	Update(ctx context.Context, id uuid.UUID, update *ClientUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Client, error)
}
