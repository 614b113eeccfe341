package shift

import (
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
)

// ShiftEntryRequest is one row of the assignment form. EmployeeID may be
// empty while the row is still being filled in; such rows are skipped on
// submit and never count toward the duplicate check.
type ShiftEntryRequest struct {
	EmployeeID  string `json:"employee_id"`
	RoleInShift string `json:"role_in_shift"`
}

// HasDuplicateEmployee reports whether the proposed entries assign the
// same employee more than once. Rows without an employee id are ignored.
func HasDuplicateEmployee(entries []ShiftEntryRequest) bool {
	seen := make(map[string]struct{}, len(entries))
	count := 0
	for _, entry := range entries {
		if entry.EmployeeID == "" {
			continue
		}
		seen[entry.EmployeeID] = struct{}{}
		count++
	}
	return len(seen) < count
}

type CreateShiftRequest struct {
	Day            string              `json:"day"`
	WorkScheduleID string              `json:"work_schedule_id"`
	Employees      []ShiftEntryRequest `json:"employees"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be a valid YYYY-MM-DD date"})
	}
	if validator.IsEmpty(r.WorkScheduleID) {
		errs = append(errs, validator.ValidationError{Field: "work_schedule_id", Message: "is required"})
	}
	errs = append(errs, validateEntries(r.Employees)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftEmployeesRequest struct {
	Day            string              `json:"day"`
	WorkScheduleID string              `json:"work_schedule_id"`
	Employees      []ShiftEntryRequest `json:"employees"`
}

func (r *UpdateShiftEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be a valid YYYY-MM-DD date"})
	}
	if validator.IsEmpty(r.WorkScheduleID) {
		errs = append(errs, validator.ValidationError{Field: "work_schedule_id", Message: "is required"})
	}
	errs = append(errs, validateEntries(r.Employees)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEntries(entries []ShiftEntryRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors

	staffed := 0
	for _, entry := range entries {
		if entry.EmployeeID == "" {
			continue
		}
		staffed++
		if !validator.IsInSlice(entry.RoleInShift, RoleValues) {
			errs = append(errs, validator.ValidationError{Field: "role_in_shift", Message: "must be one of Server, Barista, Cashier"})
		}
	}
	if staffed == 0 {
		errs = append(errs, validator.ValidationError{Field: "employees", Message: "at least one employee is required"})
	}
	if HasDuplicateEmployee(entries) {
		errs = append(errs, validator.ValidationError{Field: "employees", Message: "an employee is assigned more than once"})
	}

	return errs
}

type ShiftEntryResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	RoleInShift  string `json:"role_in_shift"`
}

type ShiftResponse struct {
	ID               string               `json:"id"`
	Day              string               `json:"day"`
	WorkScheduleID   string               `json:"work_schedule_id"`
	WorkScheduleName string               `json:"work_schedule_name,omitempty"`
	TimeStart        string               `json:"time_start,omitempty"`
	TimeEnd          string               `json:"time_end,omitempty"`
	Employees        []ShiftEntryResponse `json:"employees"`
}

// DayShiftsResponse mirrors the shape the schedule pages consume: one
// element per day with the day's raw shift records.
type DayShiftsResponse struct {
	Day    string          `json:"day"`
	Shifts []ShiftResponse `json:"shifts"`
}

type ShiftFilter struct {
	Day       *string
	StartDate *string
	EndDate   *string
}
