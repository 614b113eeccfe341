package employee

import (
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Position    string          `json:"position"`
	HourlyWage  decimal.Decimal `json:"hourly_wage"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.Position, PositionValues) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must be one of Admin, Manager, Cashier, Barista, Server"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must be 9-13 digits"})
	}
	if r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	FullName    *string          `json:"full_name,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Position    *string          `json:"position,omitempty"`
	HourlyWage  *decimal.Decimal `json:"hourly_wage,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.Position != nil && !validator.IsInSlice(*r.Position, PositionValues) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must be one of Admin, Manager, Cashier, Barista, Server"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must be 9-13 digits"})
	}
	if r.HourlyWage != nil && r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Position    string          `json:"position"`
	HourlyWage  decimal.Decimal `json:"hourly_wage"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// EmployeeWithPositionResponse is the slim shape the shift assignment
// form consumes: just enough to pick an employee and resolve their
// eligible shift roles.
type EmployeeWithPositionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
}

type EmployeeFilter struct {
	Name     *string
	Position *string
	Page     int
	Limit    int
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}

type PositionCount struct {
	Position string `json:"position"`
	Count    int64  `json:"count"`
}

// StatisticsResponse feeds the employee list page's headline numbers:
// headcount plus a breakdown over every position, zero-filled so the
// display never has to guess at missing positions.
type StatisticsResponse struct {
	Total     int64           `json:"total"`
	Positions []PositionCount `json:"positions"`
}
