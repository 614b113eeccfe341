package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/payroll"
)

type stubPayrollService struct {
	detail        payroll.PayrollResponse
	detailErr     error
	history       []payroll.PayrollResponse
	detailedFor   string
	detailedMonth int
	detailedYear  int
	listedFilter  *payroll.PayrollFilter
}

func (s *stubPayrollService) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PeriodSummaryResponse, error) {
	return payroll.PeriodSummaryResponse{}, nil
}

func (s *stubPayrollService) GetPeriodSummary(ctx context.Context, month, year int) (payroll.PeriodSummaryResponse, error) {
	return payroll.PeriodSummaryResponse{}, nil
}

func (s *stubPayrollService) GetEmployeePayroll(ctx context.Context, employeeID string, month, year int) (payroll.PayrollResponse, error) {
	s.detailedFor = employeeID
	s.detailedMonth = month
	s.detailedYear = year
	return s.detail, s.detailErr
}

func (s *stubPayrollService) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	s.listedFilter = &filter
	return s.history, nil
}

func (s *stubPayrollService) DeletePayroll(ctx context.Context, id string) error {
	return nil
}

func (s *stubPayrollService) GetEmployeeSalary(ctx context.Context, employeeID string, month, year int) (payroll.EmployeeSalaryResponse, error) {
	return payroll.EmployeeSalaryResponse{}, nil
}

func (s *stubPayrollService) GetPeriodSalaries(ctx context.Context, month, year int) ([]payroll.EmployeeSalaryResponse, error) {
	return nil, nil
}

func (s *stubPayrollService) ExportPeriod(ctx context.Context, month, year int) (string, error) {
	return "", nil
}

func newPayrollTestRouter(svc payroll.PayrollService) *chi.Mux {
	handler := NewPayrollHandler(svc)
	r := chi.NewRouter()
	r.Get("/payrolls/employee/{employeeId}", handler.EmployeePayrolls)
	return r
}

func TestPayrollHandlerEmployeeDetail(t *testing.T) {
	svc := &stubPayrollService{
		detail: payroll.PayrollResponse{ID: "p1", EmployeeID: "e1", Month: 3, Year: 2026, DisplaySalary: "1.250.000 VND"},
	}
	router := newPayrollTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payrolls/employee/e1?month=3&year=2026", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", svc.detailedFor)
	assert.Equal(t, 3, svc.detailedMonth)
	assert.Equal(t, 2026, svc.detailedYear)

	var body struct {
		Success bool                    `json:"success"`
		Data    payroll.PayrollResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "p1", body.Data.ID)
	assert.Equal(t, "1.250.000 VND", body.Data.DisplaySalary)
}

func TestPayrollHandlerEmployeeHistory(t *testing.T) {
	svc := &stubPayrollService{
		history: []payroll.PayrollResponse{
			{ID: "p1", EmployeeID: "e1", Month: 2, Year: 2026},
			{ID: "p2", EmployeeID: "e1", Month: 3, Year: 2026},
		},
	}
	router := newPayrollTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payrolls/employee/e1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.listedFilter)
	require.NotNil(t, svc.listedFilter.EmployeeID)
	assert.Equal(t, "e1", *svc.listedFilter.EmployeeID)

	var body struct {
		Success bool                      `json:"success"`
		Data    []payroll.PayrollResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 2)
}

func TestPayrollHandlerEmployeeDetailIncompletePeriod(t *testing.T) {
	svc := &stubPayrollService{}
	router := newPayrollTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payrolls/employee/e1?month=3", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.detailedFor)
}

func TestPayrollHandlerEmployeeDetailNotFound(t *testing.T) {
	svc := &stubPayrollService{detailErr: payroll.ErrPayrollNotFound}
	router := newPayrollTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payrolls/employee/e1?month=3&year=2026", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
