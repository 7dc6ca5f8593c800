package taxprofile

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/service"
)

type mockTaxProfileService struct {
	mock.Mock
}

func (m *mockTaxProfileService) GetTaxProfile(ctx context.Context, ownerID uuid.UUID) (*service.TaxProfile, error) {
	args := m.Called(ctx, ownerID)
	p, _ := args.Get(0).(*service.TaxProfile)
	return p, args.Error(1)
}

func (m *mockTaxProfileService) CreateTaxProfile(ctx context.Context, ownerID uuid.UUID, in service.NewTaxProfile) (*service.TaxProfile, error) {
	args := m.Called(ctx, ownerID, in)
	p, _ := args.Get(0).(*service.TaxProfile)
	return p, args.Error(1)
}

func (m *mockTaxProfileService) UpdateTaxProfile(ctx context.Context, ownerID uuid.UUID, in service.TaxProfileChanges) (*service.TaxProfile, error) {
	args := m.Called(ctx, ownerID, in)
	p, _ := args.Get(0).(*service.TaxProfile)
	return p, args.Error(1)
}

func (m *mockTaxProfileService) DeleteTaxProfile(ctx context.Context, ownerID uuid.UUID) error {
	return m.Called(ctx, ownerID).Error(0)
}

func newTestAPI(t *testing.T, svc *mockTaxProfileService, owner uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.ContextWithIdentity(ctx.Context(), auth.Identity{OwnerID: owner})))
	})
	NewHandler(svc).Register(api)
	return api
}

func sampleProfile(owner uuid.UUID) *service.TaxProfile {
	return &service.TaxProfile{
		ID:              uuid.Must(uuid.NewV4()),
		OwnerID:         owner,
		ContributorType: service.ContributorTypePersonaFisica,
		PaysIVA:         true,
		CreatedAt:       time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_GetMyTaxProfile(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTaxProfileService)
	mockSvc.On("GetTaxProfile", mock.Anything, owner).Return(sampleProfile(owner), nil)

	resp := newTestAPI(t, mockSvc, owner).Get("/v1/tax-profile/my")

	require.Equal(t, http.StatusOK, resp.Code)
	var body TaxProfile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "persona_fisica", body.ContributorType)
	assert.True(t, body.PaysIVA)
}

func TestHTTP_GetMyTaxProfile_None(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTaxProfileService)
	mockSvc.On("GetTaxProfile", mock.Anything, owner).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, mockSvc, owner).Get("/v1/tax-profile/my")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTaxProfile(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTaxProfileService)
	mockSvc.On("CreateTaxProfile", mock.Anything, owner, service.NewTaxProfile{
		ContributorType: service.ContributorTypePersonaFisica,
		PaysIVA:         true,
	}).Return(sampleProfile(owner), nil).Once()
	mockSvc.On("CreateTaxProfile", mock.Anything, owner, mock.Anything).Return(nil, service.ErrAlreadyExists)
	api := newTestAPI(t, mockSvc, owner)
	body := map[string]any{"contributorType": "persona_fisica", "paysIva": true}

	assert.Equal(t, http.StatusCreated, api.Post("/v1/tax-profile", body).Code)
	assert.Equal(t, http.StatusConflict, api.Post("/v1/tax-profile", body).Code)
}

func TestHTTP_CreateTaxProfile_InvalidContributorType(t *testing.T) {
	mockSvc := new(mockTaxProfileService)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/tax-profile", map[string]any{"contributorType": "empresa"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTaxProfile")
}

func TestHTTP_UpdateTaxProfile(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTaxProfileService)
	mockSvc.On("UpdateTaxProfile", mock.Anything, owner, mock.MatchedBy(func(in service.TaxProfileChanges) bool {
		return in.PaysRenta != nil && *in.PaysRenta && in.ContributorType == nil
	})).Return(sampleProfile(owner), nil)

	resp := newTestAPI(t, mockSvc, owner).Put("/v1/tax-profile", map[string]any{"paysRenta": true})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTaxProfile(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTaxProfileService)
	mockSvc.On("DeleteTaxProfile", mock.Anything, owner).Return(nil).Once()
	mockSvc.On("DeleteTaxProfile", mock.Anything, owner).Return(service.ErrNotFound)
	api := newTestAPI(t, mockSvc, owner)

	assert.Equal(t, http.StatusNoContent, api.Delete("/v1/tax-profile").Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/v1/tax-profile").Code)
}
