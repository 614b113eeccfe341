package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll not found")
	ErrMissingTotalSalary   = errors.New("payroll record is missing its total salary")
	ErrInvalidPayrollPeriod = errors.New("payroll period must be a month between 1 and 12 and a sane year")
	ErrEmptyPeriod          = errors.New("no completed timesheets in the requested period")
)
