package schedule

import "time"

// WorkSchedule is a named time-of-day shift template, e.g.
// "Morning, 08:00-12:00". It is reference data: a specific day's staffed
// occurrence of it lives in the shift package.
type WorkSchedule struct {
	ID        string
	Name      string
	TimeStart string // "HH:mm", zero-padded
	TimeEnd   string // "HH:mm", zero-padded
	CreatedAt time.Time
	UpdatedAt time.Time
}
