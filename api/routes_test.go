package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

type testServer struct {
	handler http.Handler
	tokens  *auth.Manager
}

func newTestServer(t *testing.T, apiKey string) *testServer {
	t.Helper()
	store := storage.NewMemoryStorage()
	delegator := operator.NewOperatorDelegator(store, 2, 10)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	calendar := daterange.DefaultCalendar()
	now := func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) }
	tokens := auth.NewManager("s3cret", time.Hour, "finance-server")
	logger := logging.SetupLogging("error")

	rest := &Rest{
		Logger:   logger,
		Service:  service.NewService(store, delegator, calendar, now),
		Storage:  store,
		Tokens:   tokens,
		APIKey:   apiKey,
		Location: calendar.Location,
	}
	return &testServer{handler: rest.Handler(), tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, h := range headers {
		name, value, _ := strings.Cut(h, ": ")
		req.Header.Set(name, value)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) token(t *testing.T, owner uuid.UUID) string {
	t.Helper()
	token, err := s.tokens.Sign(auth.Identity{OwnerID: owner, Name: "Ana"})
	require.NoError(t, err)
	return token
}

func TestRest_Status(t *testing.T) {
	srv := newTestServer(t, "")

	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/status", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodPost, "/status", "", nil).Code)
}

func TestRest_RequiresToken(t *testing.T) {
	srv := newTestServer(t, "")

	resp := srv.do(t, http.MethodGet, "/v1/reports/balance", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestRest_APIKey(t *testing.T) {
	srv := newTestServer(t, "key-123")
	token := srv.token(t, uuid.Must(uuid.NewV4()))

	assert.Equal(t, http.StatusUnauthorized, srv.do(t, http.MethodGet, "/v1/clients", token, nil).Code)
	assert.Equal(t, http.StatusForbidden, srv.do(t, http.MethodGet, "/v1/clients", token, nil, "x-api-key: nope").Code)
	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/v1/clients", token, nil, "x-api-key: key-123").Code)
}

func TestRest_MonthlyScenario(t *testing.T) {
	srv := newTestServer(t, "")
	owner := uuid.Must(uuid.NewV4())
	token := srv.token(t, owner)

	for _, tx := range []map[string]any{
		{"kind": "income", "amount": "750000", "date": "2024-03-05"},
		{"kind": "expense", "amount": "350000", "date": "2024-03-20"},
		{"kind": "income", "amount": "999", "date": "2024-04-01"},
	} {
		resp := srv.do(t, http.MethodPost, "/v1/transactions", token, tx)
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	}

	resp := srv.do(t, http.MethodGet, "/v1/reports/iva?from=2024-03-01&to=2024-03-31", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var iva map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&iva))
	assert.Equal(t, "2024-03-01", iva["from"])
	assert.Equal(t, "2024-03-31", iva["to"])
	assert.Equal(t, float64(86283), iva["vatCharged"])
	assert.Equal(t, float64(40265), iva["vatDeductible"])
	assert.Equal(t, float64(46018), iva["vatNet"])

	resp = srv.do(t, http.MethodGet, "/v1/reports/balance", srv.token(t, uuid.Must(uuid.NewV4())), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var balance map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&balance))
	assert.Equal(t, float64(0), balance["income"])
}

func TestRest_KindChangeConflict(t *testing.T) {
	srv := newTestServer(t, "")
	token := srv.token(t, uuid.Must(uuid.NewV4()))

	resp := srv.do(t, http.MethodPost, "/v1/transactions", token, map[string]any{"kind": "income", "amount": "100", "date": "2024-03-05"})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = srv.do(t, http.MethodPut, "/v1/transactions/"+created["id"].(string), token,
		map[string]any{"kind": "expense", "amount": "100", "date": "2024-03-05"})

	assert.Equal(t, http.StatusConflict, resp.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "kind")
}

func TestRest_OpenAPIIsPublic(t *testing.T) {
	srv := newTestServer(t, "key-123")

	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/openapi.json", "", nil).Code)
}
