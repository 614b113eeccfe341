package console

import (
	"context"
	"fmt"
	"time"
)

// State is the tracker's per-day attendance state.
type State string

const (
	StateNotCheckedIn State = "NotCheckedIn"
	StateCheckedIn    State = "CheckedIn"
	StateCheckedOut   State = "CheckedOut"
)

// Tracker drives one employee's attendance session for the current day.
// Transitions are NotCheckedIn -> CheckedIn -> CheckedOut; a failed call
// never moves the state or touches the cache, so retrying is always safe.
type Tracker struct {
	client     *Client
	cachePath  string
	employeeID string
	now        func() time.Time

	state   State
	session *CacheEntry
}

func NewTracker(client *Client, cachePath, employeeID string) *Tracker {
	return &Tracker{
		client:     client,
		cachePath:  cachePath,
		employeeID: employeeID,
		now:        time.Now,
		state:      StateNotCheckedIn,
	}
}

// Restore loads a persisted session. A session from today for this
// employee puts the tracker back into CheckedIn; anything else is stale
// and gets discarded.
func (t *Tracker) Restore() error {
	entry, err := LoadCache(t.cachePath)
	if err != nil {
		return err
	}
	if entry == nil {
		t.state = StateNotCheckedIn
		return nil
	}

	today := t.now().Format("2006-01-02")
	if entry.Day != today || entry.EmployeeID != t.employeeID {
		if err := ClearCache(t.cachePath); err != nil {
			return err
		}
		t.state = StateNotCheckedIn
		return nil
	}

	t.session = entry
	t.state = StateCheckedIn
	return nil
}

// State returns the current attendance state.
func (t *Tracker) State() State {
	return t.state
}

// Session returns the open session, nil unless CheckedIn.
func (t *Tracker) Session() *CacheEntry {
	return t.session
}

// CheckIn opens today's session on the selected work schedule. State and
// cache change only after the backend accepts.
func (t *Tracker) CheckIn(ctx context.Context, workScheduleID string) error {
	if workScheduleID == "" {
		return &ValidationError{Fields: map[string]string{"work_schedule_id": "select a work schedule first"}}
	}
	if t.state != StateNotCheckedIn {
		return &ValidationError{Fields: map[string]string{"state": fmt.Sprintf("cannot check in while %s", t.state)}}
	}

	now := t.now()
	day := now.Format("2006-01-02")
	clock := now.Format("15:04")

	data, err := t.client.CheckIn(ctx, day, workScheduleID, clock)
	if err != nil {
		return err
	}

	entry := CacheEntry{
		EmployeeID:     t.employeeID,
		Day:            day,
		WorkScheduleID: workScheduleID,
		CheckIn:        data.CheckIn,
		TimesheetID:    data.ID,
	}
	if err := SaveCache(t.cachePath, entry); err != nil {
		return err
	}

	t.session = &entry
	t.state = StateCheckedIn
	return nil
}

// CheckOut completes today's session. On success the cache is cleared; on
// failure the session stays open for a retry.
func (t *Tracker) CheckOut(ctx context.Context) error {
	if t.state != StateCheckedIn || t.session == nil {
		return &ValidationError{Fields: map[string]string{"state": fmt.Sprintf("cannot check out while %s", t.state)}}
	}

	clock := t.now().Format("15:04")
	if _, err := t.client.CheckOut(ctx, t.session.TimesheetID, clock); err != nil {
		return err
	}

	if err := ClearCache(t.cachePath); err != nil {
		return err
	}

	t.session = nil
	t.state = StateCheckedOut
	return nil
}
