package reports

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/report"
	"github.com/carson-networks/finance-server/internal/service"
)

// ReportInput selects the range. from/to win over the month/year form.
type ReportInput struct {
	From  string `query:"from" doc:"First day, YYYY-MM-DD; defaults to the start of the current month"`
	To    string `query:"to" doc:"Last day, YYYY-MM-DD; defaults to the end of the current month"`
	Month int    `query:"month" doc:"Month 1-12, used with year when from and to are absent"`
	Year  int    `query:"year" doc:"Four digit year, used with month"`
}

// Window echoes the effective range. Either From/To or Month/Year is set.
type Window struct {
	From  string `json:"from,omitempty" format:"date" doc:"Effective first day"`
	To    string `json:"to,omitempty" format:"date" doc:"Effective last day"`
	Month string `json:"month,omitempty" doc:"Two digit month of the month/year form"`
	Year  int    `json:"year,omitempty" doc:"Year of the month/year form"`
}

type BalanceBody struct {
	Window
	Income   int64 `json:"income" doc:"Total income, whole colones"`
	Expenses int64 `json:"expenses" doc:"Total expenses, whole colones"`
	Balance  int64 `json:"balance" doc:"Income minus expenses, may be negative"`
}

type BalanceOutput struct {
	Body BalanceBody
}

type IVABody struct {
	Window
	VATCharged    int64 `json:"vatCharged" doc:"VAT contained in taxed income"`
	VATDeductible int64 `json:"vatDeductible" doc:"VAT contained in taxed expenses"`
	VATNet        int64 `json:"vatNet" doc:"Charged minus deductible, may be negative"`
}

type IVAOutput struct {
	Body IVABody
}

type reportGenerator interface {
	Generate(ctx context.Context, ownerID uuid.UUID, kind report.Kind, query daterange.Query) (*service.Report, error)
}

// Handler serves the report endpoints.
type Handler struct {
	ReportService reportGenerator
}

func NewHandler(svc reportGenerator) *Handler {
	return &Handler{ReportService: svc}
}

// Register registers one operation per report kind. income-and-expenses is
// the balance report under its older name.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/balance",
		Summary:     "Balance report",
		Description: "Income, expenses and their difference for the range.",
		Tags:        []string{"Reports"},
	}, h.balance)
	huma.Register(api, huma.Operation{
		OperationID: "get-income-and-expenses-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/income-and-expenses",
		Summary:     "Income and expenses report",
		Description: "Same as the balance report.",
		Tags:        []string{"Reports"},
	}, h.balance)
	huma.Register(api, huma.Operation{
		OperationID: "get-iva-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/iva",
		Summary:     "IVA report",
		Description: "VAT charged on income, VAT paid on expenses and the net amount due for the range.",
		Tags:        []string{"Reports"},
	}, h.iva)
}

func (h *Handler) balance(ctx context.Context, input *ReportInput) (*BalanceOutput, error) {
	rep, err := h.generate(ctx, report.KindBalance, input)
	if err != nil {
		return nil, err
	}
	b := rep.Result.Balance
	return &BalanceOutput{Body: BalanceBody{
		Window:   window(rep),
		Income:   b.Income.IntPart(),
		Expenses: b.Expenses.IntPart(),
		Balance:  b.Balance.IntPart(),
	}}, nil
}

func (h *Handler) iva(ctx context.Context, input *ReportInput) (*IVAOutput, error) {
	rep, err := h.generate(ctx, report.KindIVA, input)
	if err != nil {
		return nil, err
	}
	v := rep.Result.IVA
	return &IVAOutput{Body: IVABody{
		Window:        window(rep),
		VATCharged:    v.VATCharged.IntPart(),
		VATDeductible: v.VATDeductible.IntPart(),
		VATNet:        v.VATNet.IntPart(),
	}}, nil
}

func (h *Handler) generate(ctx context.Context, kind report.Kind, input *ReportInput) (*service.Report, error) {
	ownerID, err := auth.Owner(ctx)
	if err != nil {
		return nil, err
	}
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming(kind.String() + "ReportMs")
	}
	rep, err := h.ReportService.Generate(ctx, ownerID, kind, daterange.Query{
		From:  input.From,
		To:    input.To,
		Month: input.Month,
		Year:  input.Year,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService("failed to generate report", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", rep.Count)
		logData.AddData("rangeDefaulted", rep.Defaulted)
	}
	return rep, nil
}

func window(rep *service.Report) Window {
	if rep.Period != nil {
		return Window{Month: fmt.Sprintf("%02d", int(rep.Period.Month)), Year: rep.Period.Year}
	}
	return Window{From: rep.Range.FromDate(), To: rep.Range.ToDate()}
}
