package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDuplicateEmployee(t *testing.T) {
	tests := []struct {
		name    string
		entries []ShiftEntryRequest
		want    bool
	}{
		{
			name:    "empty form",
			entries: nil,
			want:    false,
		},
		{
			name: "all distinct",
			entries: []ShiftEntryRequest{
				{EmployeeID: "a", RoleInShift: "Server"},
				{EmployeeID: "b", RoleInShift: "Barista"},
			},
			want: false,
		},
		{
			name: "same employee twice",
			entries: []ShiftEntryRequest{
				{EmployeeID: "a", RoleInShift: "Server"},
				{EmployeeID: "a", RoleInShift: "Barista"},
			},
			want: true,
		},
		{
			name: "unfilled rows never count as duplicates",
			entries: []ShiftEntryRequest{
				{EmployeeID: "", RoleInShift: "Server"},
				{EmployeeID: "", RoleInShift: "Server"},
				{EmployeeID: "a", RoleInShift: "Cashier"},
			},
			want: false,
		},
		{
			name: "duplicate among filled rows with blanks present",
			entries: []ShiftEntryRequest{
				{EmployeeID: ""},
				{EmployeeID: "a", RoleInShift: "Server"},
				{EmployeeID: ""},
				{EmployeeID: "a", RoleInShift: "Server"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDuplicateEmployee(tt.entries))
		})
	}
}

func TestCreateShiftRequestValidate(t *testing.T) {
	valid := CreateShiftRequest{
		Day:            "2026-03-02",
		WorkScheduleID: "ws-1",
		Employees: []ShiftEntryRequest{
			{EmployeeID: "a", RoleInShift: "Server"},
		},
	}
	assert.NoError(t, valid.Validate())

	duplicate := valid
	duplicate.Employees = []ShiftEntryRequest{
		{EmployeeID: "a", RoleInShift: "Server"},
		{EmployeeID: "a", RoleInShift: "Cashier"},
	}
	assert.Error(t, duplicate.Validate())

	empty := valid
	empty.Employees = []ShiftEntryRequest{{EmployeeID: ""}}
	assert.Error(t, empty.Validate())

	badRole := valid
	badRole.Employees = []ShiftEntryRequest{{EmployeeID: "a", RoleInShift: "Chef"}}
	assert.Error(t, badRole.Validate())

	badDay := valid
	badDay.Day = "03/02/2026"
	assert.Error(t, badDay.Validate())
}
