package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkedHours(t *testing.T) {
	out := func(s string) *string { return &s }

	tests := []struct {
		name     string
		checkIn  string
		checkOut *string
		want     string
	}{
		{
			name:     "regular shift",
			checkIn:  "08:00",
			checkOut: out("16:00"),
			want:     "8",
		},
		{
			name:     "half hour granularity",
			checkIn:  "08:30",
			checkOut: out("12:00"),
			want:     "3.5",
		},
		{
			name:     "overnight shift wraps past midnight",
			checkIn:  "22:00",
			checkOut: out("02:00"),
			want:     "4",
		},
		{
			name:    "open session counts as zero",
			checkIn: "08:00",
			want:    "0",
		},
		{
			name:     "malformed clock counts as zero",
			checkIn:  "8am",
			checkOut: out("16:00"),
			want:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := Timesheet{CheckIn: tt.checkIn, CheckOut: tt.checkOut}
			assert.Equal(t, tt.want, sheet.WorkedHours().String())
		})
	}
}
