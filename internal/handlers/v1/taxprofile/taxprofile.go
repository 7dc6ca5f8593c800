package taxprofile

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-server/internal/service"
)

// TaxProfile is the API response model for the caller's tax profile.
type TaxProfile struct {
	ID              string  `json:"id" doc:"Tax profile UUID"`
	ContributorType string  `json:"contributorType" enum:"persona_fisica,persona_juridica" doc:"Registration type with Hacienda"`
	PaysIVA         bool    `json:"paysIva" doc:"Registered for IVA"`
	PaysRenta       bool    `json:"paysRenta" doc:"Registered for income tax"`
	MonthlyIVADue   bool    `json:"monthlyIvaDue" doc:"Files IVA monthly"`
	Notes           *string `json:"notes,omitempty" doc:"Free text notes"`
	CreatedAt       string  `json:"createdAt" format:"date-time" doc:"RFC3339 creation time"`
}

type TaxProfileOutput struct {
	Body TaxProfile
}

type CreateTaxProfileBody struct {
	ContributorType string  `json:"contributorType" required:"true" enum:"persona_fisica,persona_juridica" doc:"Registration type with Hacienda"`
	PaysIVA         bool    `json:"paysIva,omitempty" doc:"Registered for IVA"`
	PaysRenta       bool    `json:"paysRenta,omitempty" doc:"Registered for income tax"`
	MonthlyIVADue   bool    `json:"monthlyIvaDue,omitempty" doc:"Files IVA monthly"`
	Notes           *string `json:"notes,omitempty" doc:"Free text notes"`
}

type CreateTaxProfileInput struct {
	Body CreateTaxProfileBody
}

type CreateTaxProfileOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   TaxProfile
}

// UpdateTaxProfileBody changes only the fields present. Empty notes clear them.
type UpdateTaxProfileBody struct {
	ContributorType *string `json:"contributorType,omitempty" enum:"persona_fisica,persona_juridica" doc:"Registration type with Hacienda"`
	PaysIVA         *bool   `json:"paysIva,omitempty" doc:"Registered for IVA"`
	PaysRenta       *bool   `json:"paysRenta,omitempty" doc:"Registered for income tax"`
	MonthlyIVADue   *bool   `json:"monthlyIvaDue,omitempty" doc:"Files IVA monthly"`
	Notes           *string `json:"notes,omitempty" doc:"Free text notes, empty to clear"`
}

type UpdateTaxProfileInput struct {
	Body UpdateTaxProfileBody
}

type taxProfileService interface {
	GetTaxProfile(ctx context.Context, ownerID uuid.UUID) (*service.TaxProfile, error)
	CreateTaxProfile(ctx context.Context, ownerID uuid.UUID, in service.NewTaxProfile) (*service.TaxProfile, error)
	UpdateTaxProfile(ctx context.Context, ownerID uuid.UUID, in service.TaxProfileChanges) (*service.TaxProfile, error)
	DeleteTaxProfile(ctx context.Context, ownerID uuid.UUID) error
}

// Handler serves the caller's single tax profile under /v1/tax-profile.
type Handler struct {
	TaxProfileService taxProfileService
}

func NewHandler(svc taxProfileService) *Handler {
	return &Handler{TaxProfileService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-my-tax-profile",
		Method:      http.MethodGet,
		Path:        "/v1/tax-profile/my",
		Summary:     "Get my tax profile",
		Tags:        []string{"Tax profile"},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID:   "create-tax-profile",
		Method:        http.MethodPost,
		Path:          "/v1/tax-profile",
		Summary:       "Create tax profile",
		Description:   "Creates the caller's tax profile. Each user has at most one.",
		Tags:          []string{"Tax profile"},
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-tax-profile",
		Method:      http.MethodPut,
		Path:        "/v1/tax-profile",
		Summary:     "Update tax profile",
		Tags:        []string{"Tax profile"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-tax-profile",
		Method:        http.MethodDelete,
		Path:          "/v1/tax-profile",
		Summary:       "Delete tax profile",
		Tags:          []string{"Tax profile"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*TaxProfileOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := h.TaxProfileService.GetTaxProfile(ctx, ownerID)
	if err != nil {
		return nil, apierr.FromService("failed to get tax profile", err)
	}
	return &TaxProfileOutput{Body: toResponse(*profile)}, nil
}

func (h *Handler) create(ctx context.Context, input *CreateTaxProfileInput) (*CreateTaxProfileOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := h.TaxProfileService.CreateTaxProfile(ctx, ownerID, service.NewTaxProfile{
		ContributorType: service.ContributorType(input.Body.ContributorType),
		PaysIVA:         input.Body.PaysIVA,
		PaysRenta:       input.Body.PaysRenta,
		MonthlyIVADue:   input.Body.MonthlyIVADue,
		Notes:           input.Body.Notes,
	})
	if err != nil {
		return nil, apierr.FromService("failed to create tax profile", err)
	}
	return &CreateTaxProfileOutput{Status: http.StatusCreated, Body: toResponse(*profile)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateTaxProfileInput) (*TaxProfileOutput, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	changes := service.TaxProfileChanges{
		PaysIVA:       input.Body.PaysIVA,
		PaysRenta:     input.Body.PaysRenta,
		MonthlyIVADue: input.Body.MonthlyIVADue,
		Notes:         input.Body.Notes,
	}
	if input.Body.ContributorType != nil {
		ct := service.ContributorType(*input.Body.ContributorType)
		changes.ContributorType = &ct
	}

	profile, err := h.TaxProfileService.UpdateTaxProfile(ctx, ownerID, changes)
	if err != nil {
		return nil, apierr.FromService("failed to update tax profile", err)
	}
	return &TaxProfileOutput{Body: toResponse(*profile)}, nil
}

func (h *Handler) delete(ctx context.Context, _ *struct{}) (*struct{}, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.TaxProfileService.DeleteTaxProfile(ctx, ownerID); err != nil {
		return nil, apierr.FromService("failed to delete tax profile", err)
	}
	return nil, nil
}

func toResponse(p service.TaxProfile) TaxProfile {
	return TaxProfile{
		ID:              p.ID.String(),
		ContributorType: string(p.ContributorType),
		PaysIVA:         p.PaysIVA,
		PaysRenta:       p.PaysRenta,
		MonthlyIVADue:   p.MonthlyIVADue,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}
