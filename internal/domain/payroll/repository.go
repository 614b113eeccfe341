package payroll

import "context"

type PayrollRepository interface {
	// Upsert inserts the payroll row or replaces the existing row for the
	// same employee and period.
	Upsert(ctx context.Context, p Payroll) (Payroll, error)

	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, error)
	Delete(ctx context.Context, id string) error
}
