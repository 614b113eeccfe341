package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift record not found")
	ErrDuplicateEmployee  = errors.New("an employee is assigned more than once in this shift")
	ErrRoleNotAllowed     = errors.New("employee position is not eligible for this shift role")
	ErrNoEmployees        = errors.New("at least one employee is required")
	ErrNoShiftForSchedule = errors.New("no shift found for this day and work schedule")
	ErrUnknownShiftRole   = errors.New("shift role is not recognized")
)
