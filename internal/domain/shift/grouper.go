package shift

import "sort"

// RosterEmployee is one staffed employee inside a roster row.
type RosterEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Role         string `json:"role"`
}

// RosterRow is one display row of the day-grouped shift table. Sequence is
// set only on the first row of each day so the caller can render the day
// cell with a row span; all other rows of that day carry nil.
type RosterRow struct {
	Day              string           `json:"day"`
	WorkScheduleName string           `json:"work_schedule_name"`
	TimeStart        string           `json:"time_start"`
	TimeEnd          string           `json:"time_end"`
	Sequence         *int             `json:"sequence,omitempty"`
	Employees        []RosterEmployee `json:"employees"`
}

// rosterKey merges shift records of one day that present the same schedule
// to the viewer. Records are keyed by display name and times, not by the
// work schedule id: two distinct schedules sharing name and times would be
// merged. Observed behavior, kept pending product clarification.
type rosterKey struct {
	name      string
	timeStart string
	timeEnd   string
}

// GroupRoster flattens per-day shift records into roster rows. Same-day
// records sharing (name, timeStart, timeEnd) are merged by concatenating
// their entries; employees are then deduplicated by id, keeping the
// first-seen position in the list and the last-seen role. Rows are ordered
// by day ascending, then by timeStart; the "HH:mm" values are zero-padded
// so a plain string compare is safe. A day with zero shifts contributes
// zero rows.
func GroupRoster(days []DayShifts) []RosterRow {
	var rows []RosterRow

	for _, day := range days {
		groups := make(map[rosterKey]*RosterRow)
		var order []rosterKey

		for _, rec := range day.Shifts {
			key := rosterKey{
				name:      strOrEmpty(rec.WorkScheduleName),
				timeStart: strOrEmpty(rec.TimeStart),
				timeEnd:   strOrEmpty(rec.TimeEnd),
			}
			row, ok := groups[key]
			if !ok {
				row = &RosterRow{
					Day:              day.Day,
					WorkScheduleName: key.name,
					TimeStart:        key.timeStart,
					TimeEnd:          key.timeEnd,
				}
				groups[key] = row
				order = append(order, key)
			}
			for _, entry := range rec.Entries {
				row.Employees = append(row.Employees, RosterEmployee{
					EmployeeID:   entry.EmployeeID,
					EmployeeName: strOrEmpty(entry.EmployeeName),
					Role:         string(entry.RoleInShift),
				})
			}
		}

		for _, key := range order {
			row := groups[key]
			row.Employees = dedupeEmployees(row.Employees)
			rows = append(rows, *row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		return rows[i].TimeStart < rows[j].TimeStart
	})

	// Stamp the day sequence on the first row of each day.
	seq := 0
	for i := range rows {
		if i == 0 || rows[i].Day != rows[i-1].Day {
			seq++
			n := seq
			rows[i].Sequence = &n
		}
	}

	return rows
}

// dedupeEmployees collapses repeated employee ids. The first occurrence
// keeps its place in the list; the role comes from the last occurrence.
func dedupeEmployees(employees []RosterEmployee) []RosterEmployee {
	if len(employees) < 2 {
		return employees
	}

	index := make(map[string]int, len(employees))
	result := make([]RosterEmployee, 0, len(employees))
	for _, emp := range employees {
		if at, seen := index[emp.EmployeeID]; seen {
			result[at] = emp
			continue
		}
		index[emp.EmployeeID] = len(result)
		result = append(result, emp)
	}
	return result
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
