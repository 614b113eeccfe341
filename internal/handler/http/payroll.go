package http

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/payroll"
	"github.com/brewhub-app/brewhub-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	PeriodSalaries(w http.ResponseWriter, r *http.Request)
	EmployeeSalary(w http.ResponseWriter, r *http.Request)
	EmployeePayrolls(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Generate implements PayrollHandler. Snapshots the period's computed
// salaries into payroll rows.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	summary, err := h.payrollService.GeneratePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", summary)
}

// PeriodSummary implements PayrollHandler.
func (h *payrollHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	summary, err := h.payrollService.GetPeriodSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// PeriodSalaries implements PayrollHandler. Computed from timesheets, not
// from stored payroll rows.
func (h *payrollHandlerImpl) PeriodSalaries(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	views, err := h.payrollService.GetPeriodSalaries(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, views)
}

// EmployeeSalary implements PayrollHandler.
func (h *payrollHandlerImpl) EmployeeSalary(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	view, err := h.payrollService.GetEmployeeSalary(r.Context(), chi.URLParam(r, "employeeId"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// EmployeePayrolls implements PayrollHandler. With month and year it
// returns the employee's stored row for that period; without them it
// returns the employee's full payroll history.
func (h *payrollHandlerImpl) EmployeePayrolls(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	if r.URL.Query().Get("month") == "" && r.URL.Query().Get("year") == "" {
		rows, err := h.payrollService.ListPayrolls(r.Context(), payroll.PayrollFilter{EmployeeID: &employeeID})
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, rows)
		return
	}

	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	row, err := h.payrollService.GetEmployeePayroll(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// Delete implements PayrollHandler.
func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeletePayroll(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted", nil)
}

// Export implements PayrollHandler. Streams the period table as an xlsx
// download.
func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	path, err := h.payrollService.ExportPeriod(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(path)+"\"")
	http.ServeFile(w, r, path)
}

func periodFromQuery(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	if errMonth != nil || errYear != nil {
		response.BadRequest(w, "Query parameters month and year are required", nil)
		return 0, 0, false
	}
	return month, year, true
}
