package assignment

import (
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/shift"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	EmployeeID     string `json:"-"`
	Day            string `json:"day"`
	WorkScheduleID string `json:"work_schedule_id"`
	Role           string `json:"role"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be a valid YYYY-MM-DD date"})
	}
	if validator.IsEmpty(r.WorkScheduleID) {
		errs = append(errs, validator.ValidationError{Field: "work_schedule_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Role, shift.RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of Server, Barista, Cashier"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name,omitempty"`
	Day              string `json:"day"`
	WorkScheduleID   string `json:"work_schedule_id"`
	WorkScheduleName string `json:"work_schedule_name,omitempty"`
	TimeStart        string `json:"time_start,omitempty"`
	TimeEnd          string `json:"time_end,omitempty"`
	Role             string `json:"role"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

type AssignmentFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
}
