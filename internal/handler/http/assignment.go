package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/assignment"
	"github.com/brewhub-app/brewhub-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &assignmentHandlerImpl{
		assignmentService: assignmentService,
	}
}

// Create implements AssignmentHandler. The employee comes from the access
// token, not the body.
func (h *assignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.assignmentService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment requested", created)
}

// List implements AssignmentHandler.
func (h *assignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := assignment.AssignmentFilter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if start := r.URL.Query().Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := r.URL.Query().Get("end_date"); end != "" {
		filter.EndDate = &end
	}

	list, err := h.assignmentService.ListAssignments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Approve implements AssignmentHandler.
func (h *assignmentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	approved, err := h.assignmentService.ApproveAssignment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment approved", approved)
}

// Cancel implements AssignmentHandler.
func (h *assignmentHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.assignmentService.CancelAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment cancelled", nil)
}
