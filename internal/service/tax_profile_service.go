package service

import (
	"context"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// TaxProfileService manages the single tax profile of each owner.
type TaxProfileService struct {
	storage   *storage.Storage
	processor Processor
}

func NewTaxProfileService(store *storage.Storage, processor Processor) *TaxProfileService {
	return &TaxProfileService{storage: store, processor: processor}
}

// GetTaxProfile returns ErrNotFound when the owner has none.
func (s *TaxProfileService) GetTaxProfile(ctx context.Context, ownerID uuid.UUID) (*TaxProfile, error) {
	row, err := s.storage.TaxProfiles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, translateError("get tax profile", err)
	}
	profile := taxProfileFromStorage(row)
	return &profile, nil
}

// CreateTaxProfile returns ErrAlreadyExists when the owner already has one.
func (s *TaxProfileService) CreateTaxProfile(ctx context.Context, ownerID uuid.UUID, in NewTaxProfile) (*TaxProfile, error) {
	if err := in.ContributorType.validate(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTaxProfile{Create: sqlconfig.TaxProfileCreate{
		ID:              id,
		OwnerID:         ownerID,
		ContributorType: sqlconfig.ContributorType(in.ContributorType),
		PaysIVA:         in.PaysIVA,
		PaysRenta:       in.PaysRenta,
		MonthlyIVADue:   in.MonthlyIVADue,
		Notes:           null.FromPtr(in.Notes),
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translateError("create tax profile", err)
	}

	profile := taxProfileFromStorage(action.Result)
	return &profile, nil
}

func (s *TaxProfileService) UpdateTaxProfile(ctx context.Context, ownerID uuid.UUID, in TaxProfileChanges) (*TaxProfile, error) {
	if in.empty() {
		return nil, ErrNoChanges
	}

	var update sqlconfig.TaxProfileUpdate
	if in.ContributorType != nil {
		if err := in.ContributorType.validate(); err != nil {
			return nil, err
		}
		update.ContributorType = omit.From(sqlconfig.ContributorType(*in.ContributorType))
	}
	update.PaysIVA = omit.FromPtr(in.PaysIVA)
	update.PaysRenta = omit.FromPtr(in.PaysRenta)
	update.MonthlyIVADue = omit.FromPtr(in.MonthlyIVADue)
	if in.Notes != nil {
		if *in.Notes != "" {
			update.Notes = omitnull.From(*in.Notes)
		} else {
			update.Notes = omitnull.FromPtr[string](nil)
		}
	}

	action := &actions.UpdateTaxProfile{OwnerID: ownerID, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translateError("update tax profile", err)
	}

	profile := taxProfileFromStorage(action.Result)
	return &profile, nil
}

func (s *TaxProfileService) DeleteTaxProfile(ctx context.Context, ownerID uuid.UUID) error {
	err := s.processor.Process(ctx, &actions.DeleteTaxProfile{OwnerID: ownerID})
	return translateError("delete tax profile", err)
}
