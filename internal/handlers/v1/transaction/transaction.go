package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Kind        string `json:"kind" enum:"income,expense" doc:"Transaction direction"`
	Amount      string `json:"amount" doc:"Decimal amount, tax inclusive when hasTax"`
	HasTax      bool   `json:"hasTax" doc:"Whether the amount includes VAT"`
	TaxRate     string `json:"taxRate" doc:"VAT rate in percent"`
	Description string `json:"description,omitempty" doc:"Free text description"`
	Category    string `json:"category,omitempty" doc:"Category label"`
	Date        string `json:"date" format:"date" doc:"Calendar date of the transaction"`
	CreatedAt   string `json:"createdAt" format:"date-time" doc:"RFC3339 creation time"`
}

// TransactionBody holds the mutable fields shared by create and update.
type TransactionBody struct {
	Amount      string  `json:"amount" required:"true" doc:"Decimal amount, must not be negative"`
	HasTax      *bool   `json:"hasTax,omitempty" doc:"Whether the amount includes VAT, defaults to true"`
	TaxRate     *string `json:"taxRate,omitempty" doc:"VAT rate in percent, defaults to 13"`
	Description string  `json:"description,omitempty" maxLength:"255" doc:"Free text description"`
	Category    string  `json:"category,omitempty" maxLength:"100" doc:"Category label"`
	Date        string  `json:"date" required:"true" doc:"Calendar date, YYYY-MM-DD"`
}

func toResponse(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Kind:        tx.Kind.String(),
		Amount:      tx.Amount.String(),
		HasTax:      tx.HasTax,
		TaxRate:     tx.TaxRate.String(),
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date.Format(daterange.DateLayout),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

// parseTransactionBody converts the body into service fields. Dates are
// read in loc.
func parseTransactionBody(body TransactionBody, loc *time.Location) (service.TransactionFields, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.TransactionFields{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	fields := service.TransactionFields{
		Amount:      amount,
		HasTax:      body.HasTax == nil || *body.HasTax,
		Description: body.Description,
		Category:    body.Category,
	}

	if body.TaxRate != nil {
		rate, err := decimal.NewFromString(*body.TaxRate)
		if err != nil {
			return service.TransactionFields{}, huma.NewError(http.StatusBadRequest, "invalid taxRate", err)
		}
		fields.TaxRate = &rate
	}

	fields.Date, err = daterange.ParseDate(body.Date, loc)
	if err != nil {
		return service.TransactionFields{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	return fields, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	return id, nil
}
