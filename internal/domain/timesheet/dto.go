package timesheet

import (
	"github.com/shopspring/decimal"

	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID     string `json:"-"`
	Day            string `json:"day"`
	WorkScheduleID string `json:"work_schedule_id"`
	CheckIn        string `json:"check_in"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be a valid YYYY-MM-DD date"})
	}
	if validator.IsEmpty(r.WorkScheduleID) {
		errs = append(errs, validator.ValidationError{Field: "work_schedule_id", Message: "is required"})
	}
	if !validator.IsValidClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid HH:mm clock"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"-"`
	CheckOut   string `json:"check_out"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClock(r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid HH:mm clock"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustTimesheetRequest struct {
	Bonus *string `json:"bonus"`
	Fine  *string `json:"fine"`
}

func (r *AdjustTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Bonus == nil && r.Fine == nil {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "either bonus or fine is required"})
	}
	if r.Bonus != nil {
		if _, err := decimal.NewFromString(*r.Bonus); err != nil {
			errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be a valid amount"})
		}
	}
	if r.Fine != nil {
		if _, err := decimal.NewFromString(*r.Fine); err != nil {
			errs = append(errs, validator.ValidationError{Field: "fine", Message: "must be a valid amount"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimesheetResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name,omitempty"`
	WorkScheduleID   string  `json:"work_schedule_id"`
	WorkScheduleName string  `json:"work_schedule_name,omitempty"`
	Day              string  `json:"day"`
	CheckIn          string  `json:"check_in"`
	CheckOut         *string `json:"check_out"`
	Status           string  `json:"status"`
	Bonus            string  `json:"bonus"`
	Fine             string  `json:"fine"`
	WorkedHours      string  `json:"worked_hours"`
}

type TimesheetFilter struct {
	EmployeeID *string
	Day        *string
	StartDate  *string
	EndDate    *string
	Status     *string
}
