package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type ContributorType string

const (
	ContributorTypePersonaFisica   ContributorType = "persona_fisica"
	ContributorTypePersonaJuridica ContributorType = "persona_juridica"
)

func (c ContributorType) validate() error {
	switch c {
	case ContributorTypePersonaFisica, ContributorTypePersonaJuridica:
		return nil
	default:
		return &ValidationError{
			Field:  "contributorType",
			Reason: fmt.Sprintf("must be %s or %s, got %q", ContributorTypePersonaFisica, ContributorTypePersonaJuridica, string(c)),
		}
	}
}

// TaxProfile describes how the owner is registered with Hacienda.
type TaxProfile struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	ContributorType ContributorType
	PaysIVA         bool
	PaysRenta       bool
	MonthlyIVADue   bool
	Notes           *string
	CreatedAt       time.Time
}

type NewTaxProfile struct {
	ContributorType ContributorType
	PaysIVA         bool
	PaysRenta       bool
	MonthlyIVADue   bool
	Notes           *string
}

// TaxProfileChanges is a partial update; nil fields stay as they are. An
// empty Notes clears it.
type TaxProfileChanges struct {
	ContributorType *ContributorType
	PaysIVA         *bool
	PaysRenta       *bool
	MonthlyIVADue   *bool
	Notes           *string
}

func (c TaxProfileChanges) empty() bool {
	return c.ContributorType == nil && c.PaysIVA == nil && c.PaysRenta == nil &&
		c.MonthlyIVADue == nil && c.Notes == nil
}

func taxProfileFromStorage(row *sqlconfig.TaxProfile) TaxProfile {
	return TaxProfile{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		ContributorType: ContributorType(row.ContributorType),
		PaysIVA:         row.PaysIVA,
		PaysRenta:       row.PaysRenta,
		MonthlyIVADue:   row.MonthlyIVADue,
		Notes:           row.Notes.Ptr(),
		CreatedAt:       row.CreatedAt,
	}
}
