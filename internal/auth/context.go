package auth

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type identityKey struct{}

func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

// Owner returns the caller's owner id, or a 401 error for handlers to return
// as is.
func Owner(ctx context.Context) (uuid.UUID, error) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized("Unauthorized")
	}
	return identity.OwnerID, nil
}
