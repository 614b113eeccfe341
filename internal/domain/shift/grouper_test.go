package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func record(name, start, end string, entries ...ShiftEntry) ShiftRecord {
	return ShiftRecord{
		WorkScheduleName: strPtr(name),
		TimeStart:        strPtr(start),
		TimeEnd:          strPtr(end),
		Entries:          entries,
	}
}

func entry(id, name string, role Role) ShiftEntry {
	return ShiftEntry{EmployeeID: id, EmployeeName: strPtr(name), RoleInShift: role}
}

func TestGroupRosterMergesSameScheduleWithinDay(t *testing.T) {
	days := []DayShifts{
		{
			Day: "2026-03-02",
			Shifts: []ShiftRecord{
				record("Morning", "08:00", "12:00", entry("a", "An", RoleServer)),
				record("Morning", "08:00", "12:00", entry("b", "Binh", RoleBarista)),
			},
		},
	}

	rows := GroupRoster(days)
	require.Len(t, rows, 1)
	assert.Equal(t, "Morning", rows[0].WorkScheduleName)
	require.Len(t, rows[0].Employees, 2)
	assert.Equal(t, "a", rows[0].Employees[0].EmployeeID)
	assert.Equal(t, "b", rows[0].Employees[1].EmployeeID)
}

func TestGroupRosterDoesNotMergeAcrossDays(t *testing.T) {
	days := []DayShifts{
		{Day: "2026-03-02", Shifts: []ShiftRecord{record("Morning", "08:00", "12:00", entry("a", "An", RoleServer))}},
		{Day: "2026-03-03", Shifts: []ShiftRecord{record("Morning", "08:00", "12:00", entry("b", "Binh", RoleServer))}},
	}

	rows := GroupRoster(days)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03-02", rows[0].Day)
	assert.Equal(t, "2026-03-03", rows[1].Day)
}

func TestGroupRosterDedupKeepsFirstPositionLastRole(t *testing.T) {
	days := []DayShifts{
		{
			Day: "2026-03-02",
			Shifts: []ShiftRecord{
				record("Morning", "08:00", "12:00",
					entry("a", "An", RoleServer),
					entry("b", "Binh", RoleBarista),
				),
				record("Morning", "08:00", "12:00",
					entry("a", "An", RoleCashier),
				),
			},
		},
	}

	rows := GroupRoster(days)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Employees, 2)
	// "a" keeps its first-seen slot but carries the last-seen role.
	assert.Equal(t, "a", rows[0].Employees[0].EmployeeID)
	assert.Equal(t, string(RoleCashier), rows[0].Employees[0].Role)
	assert.Equal(t, "b", rows[0].Employees[1].EmployeeID)
}

func TestGroupRosterOrdersByDayThenTimeStart(t *testing.T) {
	days := []DayShifts{
		{
			Day: "2026-03-03",
			Shifts: []ShiftRecord{
				record("Evening", "17:00", "21:00", entry("c", "Chi", RoleServer)),
			},
		},
		{
			Day: "2026-03-02",
			Shifts: []ShiftRecord{
				record("Evening", "17:00", "21:00", entry("b", "Binh", RoleServer)),
				record("Morning", "08:00", "12:00", entry("a", "An", RoleServer)),
			},
		},
	}

	rows := GroupRoster(days)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2026-03-02", "2026-03-02", "2026-03-03"}, []string{rows[0].Day, rows[1].Day, rows[2].Day})
	assert.Equal(t, "08:00", rows[0].TimeStart)
	assert.Equal(t, "17:00", rows[1].TimeStart)
}

func TestGroupRosterSequenceOnFirstRowOfEachDay(t *testing.T) {
	days := []DayShifts{
		{
			Day: "2026-03-02",
			Shifts: []ShiftRecord{
				record("Morning", "08:00", "12:00", entry("a", "An", RoleServer)),
				record("Evening", "17:00", "21:00", entry("b", "Binh", RoleServer)),
			},
		},
		{
			Day: "2026-03-03",
			Shifts: []ShiftRecord{
				record("Morning", "08:00", "12:00", entry("c", "Chi", RoleServer)),
			},
		},
	}

	rows := GroupRoster(days)
	require.Len(t, rows, 3)

	require.NotNil(t, rows[0].Sequence)
	assert.Equal(t, 1, *rows[0].Sequence)
	assert.Nil(t, rows[1].Sequence)
	require.NotNil(t, rows[2].Sequence)
	assert.Equal(t, 2, *rows[2].Sequence)
}

func TestGroupRosterEmptyDayContributesNothing(t *testing.T) {
	days := []DayShifts{
		{Day: "2026-03-02"},
		{Day: "2026-03-03", Shifts: []ShiftRecord{record("Morning", "08:00", "12:00", entry("a", "An", RoleServer))}},
	}

	rows := GroupRoster(days)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03-03", rows[0].Day)
	require.NotNil(t, rows[0].Sequence)
	assert.Equal(t, 1, *rows[0].Sequence)
}

func TestGroupRosterKeysByNameAndTimes(t *testing.T) {
	// Two distinct schedule ids presenting the same name and times merge
	// into one display row.
	days := []DayShifts{
		{
			Day: "2026-03-02",
			Shifts: []ShiftRecord{
				{
					WorkScheduleID:   "ws-1",
					WorkScheduleName: strPtr("Morning"),
					TimeStart:        strPtr("08:00"),
					TimeEnd:          strPtr("12:00"),
					Entries:          []ShiftEntry{entry("a", "An", RoleServer)},
				},
				{
					WorkScheduleID:   "ws-2",
					WorkScheduleName: strPtr("Morning"),
					TimeStart:        strPtr("08:00"),
					TimeEnd:          strPtr("12:00"),
					Entries:          []ShiftEntry{entry("b", "Binh", RoleServer)},
				},
			},
		},
	}

	rows := GroupRoster(days)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Employees, 2)
}
