package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
)

type ContributorType string

const (
	ContributorTypePersonaFisica   ContributorType = "persona_fisica"
	ContributorTypePersonaJuridica ContributorType = "persona_juridica"
)

// TaxProfile represents a tax_profiles record. Each owner has at most one.
type TaxProfile struct {
	ID              uuid.UUID        `db:"id"`
	OwnerID         uuid.UUID        `db:"owner_id"`
	ContributorType ContributorType  `db:"contributor_type"`
	PaysIVA         bool             `db:"pays_iva"`
	PaysRenta       bool             `db:"pays_renta"`
	MonthlyIVADue   bool             `db:"monthly_iva_due"`
	Notes           null.Val[string] `db:"notes"`
	CreatedAt       time.Time        `db:"created_at"`
}

type TaxProfileCreate struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	ContributorType ContributorType
	PaysIVA         bool
	PaysRenta       bool
	MonthlyIVADue   bool
	Notes           null.Val[string]
}

// TaxProfileUpdate carries only the fields being changed.
type TaxProfileUpdate struct {
	ContributorType omit.Val[ContributorType]
	PaysIVA         omit.Val[bool]
	PaysRenta       omit.Val[bool]
	MonthlyIVADue   omit.Val[bool]
	Notes           omitnull.Val[string]
}

// Empty reports whether the update changes nothing.
func (u *TaxProfileUpdate) Empty() bool {
	return u.ContributorType.IsUnset() && u.PaysIVA.IsUnset() && u.PaysRenta.IsUnset() &&
		u.MonthlyIVADue.IsUnset() && u.Notes.IsUnset()
}

//go:generate mockery --name ITaxProfileTable --inpackage --with-expecter --filename mock_ITaxProfileTable.go
type ITaxProfileTable interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*TaxProfile, error)
	Insert(ctx context.Context, create *TaxProfileCreate) (*TaxProfile, error)
	Update(ctx context.Context, id uuid.UUID, update *TaxProfileUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
