package payroll

import (
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "month must be 1-12 and year within a sane range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	Month      *int
	Year       *int
	EmployeeID *string
}

type PayrollResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	Position      string `json:"position,omitempty"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	TotalHours    string `json:"total_hours"`
	HourlyWage    string `json:"hourly_wage"`
	BaseSalary    string `json:"base_salary"`
	TotalBonus    string `json:"total_bonus"`
	TotalFine     string `json:"total_fine"`
	TotalSalary   string `json:"total_salary"`
	DisplaySalary string `json:"display_salary"`
}

// PeriodSummaryResponse is the aggregated view of one payroll period:
// every row formatted for display plus a grand total across employees.
type PeriodSummaryResponse struct {
	Month        int               `json:"month"`
	Year         int               `json:"year"`
	Rows         []PayrollResponse `json:"rows"`
	TotalSalary  string            `json:"total_salary"`
	DisplayTotal string            `json:"display_total"`
}
