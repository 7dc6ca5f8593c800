package service

import (
	"context"
	"strings"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ClientService handles client business logic. A client owned by someone
// else is reported as ErrForbidden.
type ClientService struct {
	storage   *storage.Storage
	processor Processor
}

func NewClientService(store *storage.Storage, processor Processor) *ClientService {
	return &ClientService{storage: store, processor: processor}
}

// ListClients returns the owner's clients sorted by name.
func (s *ClientService) ListClients(ctx context.Context, ownerID uuid.UUID) ([]Client, error) {
	rows, err := s.storage.Clients.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, translateError("list clients", err)
	}
	clients := make([]Client, len(rows))
	for i, row := range rows {
		clients[i] = clientFromStorage(row)
	}
	return clients, nil
}

func (s *ClientService) GetClient(ctx context.Context, ownerID, id uuid.UUID) (*Client, error) {
	row, err := s.storage.Clients.FindByID(ctx, id)
	if err != nil {
		return nil, translateError("get client", err)
	}
	if row.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	client := clientFromStorage(row)
	return &client, nil
}

func (s *ClientService) CreateClient(ctx context.Context, ownerID uuid.UUID, in NewClient) (*Client, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateClientName(in.Name); err != nil {
		return nil, err
	}
	if err := validateClientEmail(in.Email); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	phone := null.FromPtr(in.Phone)
	if p, ok := phone.Get(); ok && strings.TrimSpace(p) == "" {
		phone = null.Val[string]{}
	}

	action := &actions.CreateClient{Create: sqlconfig.ClientCreate{
		ID:      id,
		OwnerID: ownerID,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   phone,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translateError("create client", err)
	}

	client := clientFromStorage(action.Result)
	return &client, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, ownerID, id uuid.UUID, in ClientChanges) (*Client, error) {
	if in.empty() {
		return nil, ErrNoChanges
	}

	var update sqlconfig.ClientUpdate
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validateClientName(name); err != nil {
			return nil, err
		}
		update.Name = omit.From(name)
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if err := validateClientEmail(email); err != nil {
			return nil, err
		}
		update.Email = omit.From(email)
	}
	if in.Phone != nil {
		if phone := strings.TrimSpace(*in.Phone); phone != "" {
			update.Phone = omitnull.From(phone)
		} else {
			update.Phone = omitnull.FromPtr[string](nil)
		}
	}

	action := &actions.UpdateClient{ID: id, OwnerID: ownerID, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translateError("update client", err)
	}

	client := clientFromStorage(action.Result)
	return &client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.processor.Process(ctx, &actions.DeleteClient{ID: id, OwnerID: ownerID})
	return translateError("delete client", err)
}
