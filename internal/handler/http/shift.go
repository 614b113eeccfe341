package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/shift"
	"github.com/brewhub-app/brewhub-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Roster(w http.ResponseWriter, r *http.Request)
	UpdateEmployees(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteByWorkSchedule(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// Create implements ShiftHandler.
func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", created)
}

// List implements ShiftHandler.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.shiftService.ListShifts(r.Context(), shiftFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Roster implements ShiftHandler. Returns the day-grouped display rows.
func (h *shiftHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	rows, err := h.shiftService.GetRoster(r.Context(), shiftFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// UpdateEmployees implements ShiftHandler.
func (h *shiftHandlerImpl) UpdateEmployees(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftEmployeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.shiftService.UpdateShiftEmployees(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift employees updated", updated)
}

// Delete implements ShiftHandler.
func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.shiftService.DeleteShift(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// DeleteByWorkSchedule implements ShiftHandler. Removes one work
// schedule's staffing within a day.
func (h *shiftHandlerImpl) DeleteByWorkSchedule(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	workScheduleID := r.URL.Query().Get("work_schedule_id")

	if err := h.shiftService.DeleteWorkScheduleShifts(r.Context(), day, workScheduleID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule shifts deleted", nil)
}

func shiftFilterFromQuery(r *http.Request) shift.ShiftFilter {
	filter := shift.ShiftFilter{}
	if day := r.URL.Query().Get("day"); day != "" {
		filter.Day = &day
	}
	if start := r.URL.Query().Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := r.URL.Query().Get("end_date"); end != "" {
		filter.EndDate = &end
	}
	return filter
}
