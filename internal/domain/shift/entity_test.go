package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftRecordHasEmployee(t *testing.T) {
	rec := record("Morning", "08:00", "12:00",
		entry("a", "An", RoleServer),
		entry("b", "Binh", RoleBarista),
	)

	assert.True(t, rec.HasEmployee("a"))
	assert.True(t, rec.HasEmployee("b"))
	assert.False(t, rec.HasEmployee("c"))
	assert.False(t, ShiftRecord{}.HasEmployee("a"))
}

func TestHasEmployeeAcrossDuplicateRecords(t *testing.T) {
	// The same day and work schedule can carry several records; an
	// employee staffed only on a later one must still be found.
	recs := []ShiftRecord{
		record("Morning", "08:00", "12:00", entry("a", "An", RoleServer)),
		record("Morning", "08:00", "12:00", entry("b", "Binh", RoleBarista)),
	}

	found := false
	for _, rec := range recs {
		if rec.HasEmployee("b") {
			found = true
			break
		}
	}
	assert.True(t, found)
	assert.False(t, recs[0].HasEmployee("b"))
}
