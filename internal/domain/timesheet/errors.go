package timesheet

import "errors"

var (
	ErrTimesheetNotFound  = errors.New("timesheet not found")
	ErrAlreadyCheckedIn   = errors.New("employee already has an open timesheet for this day")
	ErrAlreadyCheckedOut  = errors.New("timesheet is already completed")
	ErrNotScheduledForDay = errors.New("employee is not scheduled for this day and work schedule")
)
