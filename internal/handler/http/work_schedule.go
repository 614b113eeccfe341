package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/schedule"
	"github.com/brewhub-app/brewhub-backend-go/internal/handler/http/response"
)

type WorkScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type workScheduleHandlerImpl struct {
	scheduleService schedule.WorkScheduleService
}

func NewWorkScheduleHandler(scheduleService schedule.WorkScheduleService) WorkScheduleHandler {
	return &workScheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Create implements WorkScheduleHandler.
func (h *workScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateWorkScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.CreateWorkSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work schedule created", created)
}

// List implements WorkScheduleHandler.
func (h *workScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.scheduleService.ListWorkSchedules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Update implements WorkScheduleHandler.
func (h *workScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateWorkScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.scheduleService.UpdateWorkSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule updated", updated)
}

// Delete implements WorkScheduleHandler.
func (h *workScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteWorkSchedule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule deleted", nil)
}
