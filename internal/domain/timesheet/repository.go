package timesheet

import (
	"context"
	"time"
)

type TimesheetRepository interface {
	Create(ctx context.Context, t Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, id string) (Timesheet, error)
	List(ctx context.Context, filter TimesheetFilter) ([]Timesheet, error)

	// GetOpenForDay returns the in-progress timesheet of an employee on a
	// day, or ErrTimesheetNotFound when none is open.
	GetOpenForDay(ctx context.Context, employeeID string, day time.Time) (Timesheet, error)

	// ListForPeriod returns all completed timesheets of one calendar month,
	// joined with employee name and hourly wage.
	ListForPeriod(ctx context.Context, month, year int) ([]Timesheet, error)

	SetCheckOut(ctx context.Context, id string, checkOut string) error
	SetAdjustments(ctx context.Context, id string, bonus, fine *string) error
	Delete(ctx context.Context, id string) error
}
