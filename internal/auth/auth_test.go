package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() Identity {
	return Identity{OwnerID: uuid.Must(uuid.NewV4()), Name: "Ana", Email: "ana@example.cr"}
}

// -- Manager tests --

func TestManager_SignValidate(t *testing.T) {
	m := NewManager("s3cret", time.Hour, "finance-server")
	identity := testIdentity()

	token, err := m.Sign(identity)
	require.NoError(t, err)

	got, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("s3cret", time.Minute, "finance-server")
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := m.Sign(testIdentity())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validate(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_WrongSecret(t *testing.T) {
	token, err := NewManager("one", time.Hour, "").Sign(testIdentity())
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour, "").Validate(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{ID: uuid.Must(uuid.NewV4()).String()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("s3cret", time.Hour, "").Validate(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_SubjectFallback(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   owner.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	identity, err := NewManager("s3cret", time.Hour, "").Validate(token)

	require.NoError(t, err)
	assert.Equal(t, owner, identity.OwnerID)
}

func TestManager_MissingOwner(t *testing.T) {
	claims := Claims{ID: "not-a-uuid"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = NewManager("s3cret", time.Hour, "").Validate(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

// -- Middleware tests --

type whoamiOutput struct {
	Body struct {
		OwnerID string `json:"ownerId"`
	}
}

func newAuthTestAPI(t *testing.T, m *Manager, apiKey string) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if apiKey != "" {
		api.UseMiddleware(APIKeyMiddleware(api, apiKey))
	}
	api.UseMiddleware(Middleware(api, m))
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/v1/whoami",
	}, func(ctx context.Context, _ *struct{}) (*whoamiOutput, error) {
		owner, err := Owner(ctx)
		if err != nil {
			return nil, err
		}
		out := &whoamiOutput{}
		out.Body.OwnerID = owner.String()
		return out, nil
	})
	return api
}

func TestMiddleware_BearerToken(t *testing.T) {
	m := NewManager("s3cret", time.Hour, "")
	identity := testIdentity()
	token, err := m.Sign(identity)
	require.NoError(t, err)

	resp := newAuthTestAPI(t, m, "").Get("/v1/whoami", "Authorization: Bearer "+token)

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, identity.OwnerID.String(), body["ownerId"])
}

func TestMiddleware_CookieFallback(t *testing.T) {
	m := NewManager("s3cret", time.Hour, "")
	token, err := m.Sign(testIdentity())
	require.NoError(t, err)

	resp := newAuthTestAPI(t, m, "").Get("/v1/whoami", "Cookie: theme=dark; token="+token)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestMiddleware_MissingToken(t *testing.T) {
	resp := newAuthTestAPI(t, NewManager("s3cret", time.Hour, ""), "").Get("/v1/whoami")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	resp := newAuthTestAPI(t, NewManager("s3cret", time.Hour, ""), "").Get("/v1/whoami", "Authorization: Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAPIKeyMiddleware(t *testing.T) {
	m := NewManager("s3cret", time.Hour, "")
	token, err := m.Sign(testIdentity())
	require.NoError(t, err)
	api := newAuthTestAPI(t, m, "key-123")
	bearer := "Authorization: Bearer " + token

	assert.Equal(t, http.StatusUnauthorized, api.Get("/v1/whoami", bearer).Code)
	assert.Equal(t, http.StatusForbidden, api.Get("/v1/whoami", bearer, "x-api-key: wrong").Code)
	assert.Equal(t, http.StatusOK, api.Get("/v1/whoami", bearer, "x-api-key: key-123").Code)
}

func TestOwner_NoIdentity(t *testing.T) {
	_, err := Owner(context.Background())

	var statusErr huma.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.GetStatus())
}
