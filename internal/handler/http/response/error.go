package response

import (
	"errors"
	"net/http"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/assignment"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/auth"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/payroll"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/schedule"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/shift"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/timesheet"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own employee record", nil)
	case errors.Is(err, employee.ErrManagerAccessRequired),
		errors.Is(err, employee.ErrAdminAccessRequired),
		errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Work schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrNameExists):
		Conflict(w, "Work schedule name already exists")
	case errors.Is(err, schedule.ErrWorkScheduleInUse):
		Conflict(w, "Work schedule is referenced by existing shifts")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNoShiftForSchedule):
		NotFound(w, "No shift found for this day and work schedule")
	case errors.Is(err, shift.ErrDuplicateEmployee):
		BadRequest(w, "An employee is assigned more than once in this shift", nil)
	case errors.Is(err, shift.ErrRoleNotAllowed):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrNoEmployees):
		BadRequest(w, "At least one employee is required", nil)

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrAssignmentAlreadyProcessed):
		Conflict(w, "Assignment has already been approved or cancelled")
	case errors.Is(err, assignment.ErrAlreadyRequested):
		Conflict(w, "You already requested this day and work schedule")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already has an open timesheet for this day")
	case errors.Is(err, timesheet.ErrAlreadyCheckedOut):
		Conflict(w, "Timesheet is already completed")
	case errors.Is(err, timesheet.ErrNotScheduledForDay):
		BadRequest(w, "Employee is not scheduled for this day and work schedule", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrInvalidPayrollPeriod):
		BadRequest(w, "Month must be 1-12 and year within a sane range", nil)
	case errors.Is(err, payroll.ErrEmptyPeriod):
		NotFound(w, "No completed timesheets in the requested period")
	case errors.Is(err, payroll.ErrMissingTotalSalary):
		InternalServerError(w, "Payroll record is missing its total salary")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
