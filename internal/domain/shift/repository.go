package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shift records. List
// results carry the joined work schedule name/times and employee names the
// roster grouper needs.
type ShiftRepository interface {
	Create(ctx context.Context, rec ShiftRecord) (ShiftRecord, error)

	GetByID(ctx context.Context, id string) (ShiftRecord, error)

	// GetByDayAndSchedule returns the oldest record for the day and work
	// schedule, or nil when none exists. Used to merge approved
	// assignments instead of piling up records.
	GetByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) (*ShiftRecord, error)

	// ListByDayAndSchedule returns every record for the day and work
	// schedule. Membership checks go through this, never through
	// GetByDayAndSchedule, so an employee staffed on any record is seen.
	ListByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) ([]ShiftRecord, error)

	List(ctx context.Context, filter ShiftFilter) ([]ShiftRecord, error)

	// ReplaceEntries swaps the full employee set of a record.
	ReplaceEntries(ctx context.Context, shiftID string, entries []ShiftEntry) error

	// AddEntries appends entries to a record, ignoring employees already
	// present.
	AddEntries(ctx context.Context, shiftID string, entries []ShiftEntry) error

	Delete(ctx context.Context, id string) error

	// DeleteByDayAndSchedule removes a single work schedule's staffing
	// within a day.
	DeleteByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) error
}
