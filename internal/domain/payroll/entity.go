package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one employee's pay for one calendar month, derived from the
// employee's completed timesheets in that month.
type Payroll struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	TotalHours  decimal.Decimal
	HourlyWage  decimal.Decimal
	BaseSalary  decimal.Decimal
	TotalBonus  decimal.Decimal
	TotalFine   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// TotalSalary is nullable: rows written before adjustments were rolled
	// in may carry NULL, and such rows must be rejected at display time
	// instead of rendering a bogus amount.
	TotalSalary *decimal.Decimal

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
	Position      *string
}
