package timesheet

import "context"

type TimesheetService interface {
	// CheckIn opens a timesheet for the day. When the employee already has
	// an open timesheet for the same day it is returned as-is instead of
	// creating a second one.
	CheckIn(ctx context.Context, req CheckInRequest) (TimesheetResponse, error)

	// CheckOut completes the employee's open timesheet for the day.
	CheckOut(ctx context.Context, id string, req CheckOutRequest) (TimesheetResponse, error)

	GetTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
	ListTimesheets(ctx context.Context, filter TimesheetFilter) ([]TimesheetResponse, error)
	AdjustTimesheet(ctx context.Context, id string, req AdjustTimesheetRequest) (TimesheetResponse, error)
	DeleteTimesheet(ctx context.Context, id string) error
}
