package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/daterange"
	"github.com/carson-networks/finance-server/internal/report"
	"github.com/carson-networks/finance-server/internal/service"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Generate(ctx context.Context, ownerID uuid.UUID, kind report.Kind, query daterange.Query) (*service.Report, error) {
	args := m.Called(ctx, ownerID, kind, query)
	rep, _ := args.Get(0).(*service.Report)
	return rep, args.Error(1)
}

func newTestAPI(t *testing.T, svc reportGenerator, owner uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if owner != uuid.Nil {
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, auth.ContextWithIdentity(ctx.Context(), auth.Identity{OwnerID: owner})))
		})
	}
	NewHandler(svc).Register(api)
	return api
}

func marchScenario() []report.Movement {
	return []report.Movement{
		{Flow: report.FlowIncome, Amount: decimal.NewFromInt(750000), HasTax: true, TaxRate: decimal.NewFromInt(13)},
		{Flow: report.FlowExpense, Amount: decimal.NewFromInt(350000), HasTax: true, TaxRate: decimal.NewFromInt(13)},
	}
}

func marchReport(kind report.Kind) *service.Report {
	result, err := report.Compute(kind, marchScenario())
	if err != nil {
		panic(err)
	}
	return &service.Report{
		Range:  daterange.DefaultCalendar().Month(2024, time.March),
		Result: result,
		Count:  2,
	}
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHTTP_IVAReport(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	query := daterange.Query{From: "2024-03-01", To: "2024-03-31"}
	mockSvc := new(mockReportService)
	mockSvc.On("Generate", mock.Anything, owner, report.KindIVA, query).Return(marchReport(report.KindIVA), nil)

	resp := newTestAPI(t, mockSvc, owner).Get("/v1/reports/iva?from=2024-03-01&to=2024-03-31")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, map[string]any{
		"from":          "2024-03-01",
		"to":            "2024-03-31",
		"vatCharged":    float64(86283),
		"vatDeductible": float64(40265),
		"vatNet":        float64(46018),
	}, withoutSchema(decode(t, resp)))
}

func TestHTTP_BalanceReport_Aliases(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockReportService)
	mockSvc.On("Generate", mock.Anything, owner, report.KindBalance, daterange.Query{}).Return(marchReport(report.KindBalance), nil)
	api := newTestAPI(t, mockSvc, owner)

	for _, path := range []string{"/v1/reports/balance", "/v1/reports/income-and-expenses"} {
		resp := api.Get(path)
		require.Equal(t, http.StatusOK, resp.Code, path)
		body := decode(t, resp)
		assert.Equal(t, float64(750000), body["income"], path)
		assert.Equal(t, float64(350000), body["expenses"], path)
		assert.Equal(t, float64(400000), body["balance"], path)
	}
}

func TestHTTP_BalanceReport_MonthYearForm(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	rep := marchReport(report.KindBalance)
	rep.Period = &daterange.Period{Month: time.March, Year: 2024}
	mockSvc := new(mockReportService)
	mockSvc.On("Generate", mock.Anything, owner, report.KindBalance, daterange.Query{Month: 3, Year: 2024}).Return(rep, nil)

	resp := newTestAPI(t, mockSvc, owner).Get("/v1/reports/balance?month=3&year=2024")

	require.Equal(t, http.StatusOK, resp.Code)
	body := decode(t, resp)
	assert.Equal(t, "03", body["month"])
	assert.Equal(t, float64(2024), body["year"])
	assert.NotContains(t, body, "from")
}

func TestHTTP_Report_StoreUnavailable(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockReportService)
	mockSvc.On("Generate", mock.Anything, owner, report.KindIVA, mock.Anything).
		Return(nil, &service.StoreUnavailableError{Op: "list transactions", Err: errors.New("db down")})

	resp := newTestAPI(t, mockSvc, owner).Get("/v1/reports/iva")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_Report_StoreTimeout(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	mockSvc := new(mockReportService)
	mockSvc.On("Generate", mock.Anything, owner, report.KindBalance, mock.Anything).
		Return(nil, fmt.Errorf("list transactions: %w", context.DeadlineExceeded))

	resp := newTestAPI(t, mockSvc, owner).Get("/v1/reports/balance")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, decode(t, resp), "error")
}

func TestHTTP_Report_Unauthenticated(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newTestAPI(t, mockSvc, uuid.Nil).Get("/v1/reports/balance")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Generate")
}

// withoutSchema drops the $schema link huma adds to response bodies.
func withoutSchema(body map[string]any) map[string]any {
	delete(body, "$schema")
	return body
}
