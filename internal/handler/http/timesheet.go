package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/timesheet"
	"github.com/brewhub-app/brewhub-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// CheckIn implements TimesheetHandler. The employee comes from the access
// token; resubmitting the same day returns the open timesheet unchanged.
func (h *timesheetHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeIDFromContext(r)

	sheet, err := h.timesheetService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", sheet)
}

// CheckOut implements TimesheetHandler.
func (h *timesheetHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeIDFromContext(r)

	sheet, err := h.timesheetService.CheckOut(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", sheet)
}

// List implements TimesheetHandler.
func (h *timesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.timesheetService.ListTimesheets(r.Context(), timesheetFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// ListByEmployee implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	filter := timesheetFilterFromQuery(r)
	filter.EmployeeID = &employeeID

	list, err := h.timesheetService.ListTimesheets(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Adjust implements TimesheetHandler. Manager-only bonus/fine edit.
func (h *timesheetHandlerImpl) Adjust(w http.ResponseWriter, r *http.Request) {
	var req timesheet.AdjustTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sheet, err := h.timesheetService.AdjustTimesheet(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet adjusted", sheet)
}

// Delete implements TimesheetHandler.
func (h *timesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timesheetService.DeleteTimesheet(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet deleted", nil)
}

func timesheetFilterFromQuery(r *http.Request) timesheet.TimesheetFilter {
	filter := timesheet.TimesheetFilter{}
	if day := r.URL.Query().Get("day"); day != "" {
		filter.Day = &day
	}
	if start := r.URL.Query().Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := r.URL.Query().Get("end_date"); end != "" {
		filter.EndDate = &end
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	return filter
}

func employeeIDFromContext(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	employeeID, _ := claims["employee_id"].(string)
	return employeeID
}
