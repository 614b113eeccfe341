package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// Timesheet is one attendance record: an employee checked in for a work
// schedule on a day, and possibly checked out again. CheckIn/CheckOut are
// wall clock values in "HH:mm"; CheckOut is nil while the session is open.
type Timesheet struct {
	ID             string
	EmployeeID     string
	WorkScheduleID string
	Day            time.Time
	CheckIn        string
	CheckOut       *string
	Status         Status
	Bonus          decimal.Decimal
	Fine           decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName     *string
	WorkScheduleName *string
	TimeStart        *string
	TimeEnd          *string
	HourlyWage       *decimal.Decimal
}

// WorkedHours returns the span between check-in and check-out in hours.
// Open sessions and malformed clocks count as zero.
func (t Timesheet) WorkedHours() decimal.Decimal {
	if t.CheckOut == nil {
		return decimal.Zero
	}
	in, err := time.Parse("15:04", t.CheckIn)
	if err != nil {
		return decimal.Zero
	}
	out, err := time.Parse("15:04", *t.CheckOut)
	if err != nil {
		return decimal.Zero
	}
	minutes := out.Sub(in).Minutes()
	if minutes < 0 {
		// Overnight session: check-out landed past midnight.
		minutes += 24 * 60
	}
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60))
}
