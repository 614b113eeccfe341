package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/shift"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/timesheet"
)

type stubShiftRepo struct {
	recs []shift.ShiftRecord
}

func (s *stubShiftRepo) Create(ctx context.Context, rec shift.ShiftRecord) (shift.ShiftRecord, error) {
	return rec, nil
}

func (s *stubShiftRepo) GetByID(ctx context.Context, id string) (shift.ShiftRecord, error) {
	return shift.ShiftRecord{}, shift.ErrShiftNotFound
}

func (s *stubShiftRepo) GetByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) (*shift.ShiftRecord, error) {
	if len(s.recs) == 0 {
		return nil, nil
	}
	return &s.recs[0], nil
}

func (s *stubShiftRepo) ListByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) ([]shift.ShiftRecord, error) {
	return s.recs, nil
}

func (s *stubShiftRepo) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftRecord, error) {
	return s.recs, nil
}

func (s *stubShiftRepo) ReplaceEntries(ctx context.Context, shiftID string, entries []shift.ShiftEntry) error {
	return nil
}

func (s *stubShiftRepo) AddEntries(ctx context.Context, shiftID string, entries []shift.ShiftEntry) error {
	return nil
}

func (s *stubShiftRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubShiftRepo) DeleteByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) error {
	return nil
}

type stubTimesheetRepo struct{}

func (s *stubTimesheetRepo) Create(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	return t, nil
}

func (s *stubTimesheetRepo) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
}

func (s *stubTimesheetRepo) List(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func (s *stubTimesheetRepo) GetOpenForDay(ctx context.Context, employeeID string, day time.Time) (timesheet.Timesheet, error) {
	return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
}

func (s *stubTimesheetRepo) ListForPeriod(ctx context.Context, month, year int) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func (s *stubTimesheetRepo) SetCheckOut(ctx context.Context, id string, checkOut string) error {
	return nil
}

func (s *stubTimesheetRepo) SetAdjustments(ctx context.Context, id string, bonus, fine *string) error {
	return nil
}

func (s *stubTimesheetRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestCheckInRejectsUnscheduledEmployee(t *testing.T) {
	// The day carries two records for the schedule; the employee is on
	// neither, and the gate must have scanned both before refusing.
	shiftRepo := &stubShiftRepo{recs: []shift.ShiftRecord{
		{ID: "s1", Entries: []shift.ShiftEntry{{EmployeeID: "a", RoleInShift: shift.RoleServer}}},
		{ID: "s2", Entries: []shift.ShiftEntry{{EmployeeID: "b", RoleInShift: shift.RoleBarista}}},
	}}
	svc := NewTimesheetService(nil, &stubTimesheetRepo{}, shiftRepo)

	_, err := svc.CheckIn(context.Background(), timesheet.CheckInRequest{
		EmployeeID:     "c",
		Day:            "2026-03-02",
		WorkScheduleID: "ws-1",
		CheckIn:        "08:00",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, timesheet.ErrNotScheduledForDay)
}

func TestCheckInRejectsWhenNoShiftExists(t *testing.T) {
	svc := NewTimesheetService(nil, &stubTimesheetRepo{}, &stubShiftRepo{})

	_, err := svc.CheckIn(context.Background(), timesheet.CheckInRequest{
		EmployeeID:     "a",
		Day:            "2026-03-02",
		WorkScheduleID: "ws-1",
		CheckIn:        "08:00",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, timesheet.ErrNotScheduledForDay)
}
