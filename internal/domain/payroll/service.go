package payroll

import "context"

type PayrollService interface {
	// GeneratePayroll recomputes every employee's payroll for the period
	// from completed timesheets and upserts the rows in one transaction.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (PeriodSummaryResponse, error)

	GetPeriodSummary(ctx context.Context, month, year int) (PeriodSummaryResponse, error)
	GetEmployeePayroll(ctx context.Context, employeeID string, month, year int) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	DeletePayroll(ctx context.Context, id string) error

	// GetEmployeeSalary computes the employee's salary for the month from
	// completed timesheets without persisting anything.
	GetEmployeeSalary(ctx context.Context, employeeID string, month, year int) (EmployeeSalaryResponse, error)

	// GetPeriodSalaries computes every employee's salary for the month from
	// completed timesheets, one view per employee with timesheets in it.
	GetPeriodSalaries(ctx context.Context, month, year int) ([]EmployeeSalaryResponse, error)

	// ExportPeriod writes the period summary to an xlsx file and returns
	// its path.
	ExportPeriod(ctx context.Context, month, year int) (string, error)
}
