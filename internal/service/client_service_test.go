package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateClient_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	var validationErr *ValidationError

	_, err := svc.Client.CreateClient(ctx, newOwner(), NewClient{Name: " ", Email: "a@b.cr"})
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.Client.CreateClient(ctx, newOwner(), NewClient{Name: "Ana", Email: "not-an-email"})
	assert.ErrorAs(t, err, &validationErr)
}

func TestClient_Lifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := newOwner()

	created, err := svc.Client.CreateClient(ctx, owner, NewClient{Name: "Soda La Esquina", Email: "soda@example.cr", Phone: strPtr("8888-1234")})
	require.NoError(t, err)
	require.NotNil(t, created.Phone)

	updated, err := svc.Client.UpdateClient(ctx, owner, created.ID, ClientChanges{Name: strPtr("Soda Central"), Phone: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "Soda Central", updated.Name)
	assert.Equal(t, "soda@example.cr", updated.Email)
	assert.Nil(t, updated.Phone)

	clients, err := svc.Client.ListClients(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	require.NoError(t, svc.Client.DeleteClient(ctx, owner, created.ID))
	_, err = svc.Client.GetClient(ctx, owner, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ForeignIsForbidden(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.Client.CreateClient(ctx, newOwner(), NewClient{Name: "Ana", Email: "ana@example.cr"})
	require.NoError(t, err)
	intruder := newOwner()

	_, err = svc.Client.GetClient(ctx, intruder, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Client.UpdateClient(ctx, intruder, created.ID, ClientChanges{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Client.DeleteClient(ctx, intruder, created.ID), ErrForbidden)
}

func TestUpdateClient_NoChanges(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Client.UpdateClient(context.Background(), newOwner(), newOwner(), ClientChanges{})

	assert.ErrorIs(t, err, ErrNoChanges)
}
