package shift

import "time"

// Role is the operational role an employee performs within one shift,
// independent of their permanent position.
type Role string

const (
	RoleServer  Role = "Server"
	RoleBarista Role = "Barista"
	RoleCashier Role = "Cashier"
)

var RoleValues = []string{
	string(RoleServer),
	string(RoleBarista),
	string(RoleCashier),
}

// ShiftEntry is one (employee, role) pair inside a shift record.
type ShiftEntry struct {
	EmployeeID  string
	RoleInShift Role

	// Joined field
	EmployeeName *string
}

// ShiftRecord is the staffing of one work schedule on one calendar day.
// Invariant: employee ids are unique within a record. Several records may
// still exist for the same day and work schedule; membership checks must
// scan all of them and the roster grouper merges them for display.
type ShiftRecord struct {
	ID             string
	Day            time.Time
	WorkScheduleID string
	Entries        []ShiftEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	WorkScheduleName *string
	TimeStart        *string
	TimeEnd          *string
}

// HasEmployee reports whether the employee appears in any of the record's
// entries.
func (r ShiftRecord) HasEmployee(employeeID string) bool {
	for _, entry := range r.Entries {
		if entry.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

// DayShifts bundles all shift records of one calendar day.
type DayShifts struct {
	Day    string // "YYYY-MM-DD"
	Shifts []ShiftRecord
}
