package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/timesheet"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0 VND"},
		{"950", "950 VND"},
		{"1234567", "1.234.567 VND"},
		{"2000000", "2.000.000 VND"},
		{"1234567.89", "1.234.568 VND"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVND(decimal.RequireFromString(tt.amount)))
	}
}

func TestBuildPeriodSummary(t *testing.T) {
	rows := []Payroll{
		{
			ID:           "p2",
			EmployeeID:   "e2",
			EmployeeName: strPtr("Binh"),
			Month:        3,
			Year:         2026,
			TotalHours:   decimal.RequireFromString("80"),
			HourlyWage:   decimal.RequireFromString("25000"),
			BaseSalary:   decimal.RequireFromString("2000000"),
			TotalBonus:   decimal.Zero,
			TotalFine:    decimal.Zero,
			TotalSalary:  decPtr("2000000"),
		},
		{
			ID:           "p1",
			EmployeeID:   "e1",
			EmployeeName: strPtr("An"),
			Month:        3,
			Year:         2026,
			TotalHours:   decimal.RequireFromString("40"),
			HourlyWage:   decimal.RequireFromString("30000"),
			BaseSalary:   decimal.RequireFromString("1200000"),
			TotalBonus:   decimal.RequireFromString("100000"),
			TotalFine:    decimal.RequireFromString("50000"),
			TotalSalary:  decPtr("1250000"),
		},
	}

	summary, err := BuildPeriodSummary(3, 2026, rows)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, 2026, summary.Year)
	require.Len(t, summary.Rows, 2)

	// Sorted by employee name, not insertion order.
	assert.Equal(t, "An", summary.Rows[0].EmployeeName)
	assert.Equal(t, "Binh", summary.Rows[1].EmployeeName)
	assert.Equal(t, "1.250.000 VND", summary.Rows[0].DisplaySalary)

	assert.Equal(t, "3250000", summary.TotalSalary)
	assert.Equal(t, "3.250.000 VND", summary.DisplayTotal)
}

func TestBuildPeriodSummaryEmptyPeriod(t *testing.T) {
	summary, err := BuildPeriodSummary(3, 2026, nil)
	require.NoError(t, err)
	assert.Empty(t, summary.Rows)
	assert.Equal(t, "0", summary.TotalSalary)
	assert.Equal(t, "0 VND", summary.DisplayTotal)
}

func TestBuildPeriodSummaryMissingTotalFailsLoudly(t *testing.T) {
	rows := []Payroll{
		{ID: "p1", EmployeeID: "e1", TotalSalary: decPtr("1000000")},
		{ID: "p2", EmployeeID: "e2"},
	}

	_, err := BuildPeriodSummary(3, 2026, rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTotalSalary)
	assert.Contains(t, err.Error(), "p2")
}

func TestComputeSalary(t *testing.T) {
	checkOut := "16:00"
	sheets := []timesheet.Timesheet{
		{
			Day:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			CheckIn:  "08:00",
			CheckOut: &checkOut,
			Status:   timesheet.StatusCompleted,
			Bonus:    decimal.RequireFromString("50000"),
			Fine:     decimal.Zero,
		},
		{
			Day:      time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			CheckIn:  "08:00",
			CheckOut: &checkOut,
			Status:   timesheet.StatusCompleted,
			Bonus:    decimal.Zero,
			Fine:     decimal.RequireFromString("20000"),
		},
		{
			// Open session must not count toward the month.
			Day:     time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			CheckIn: "08:00",
			Status:  timesheet.StatusInProgress,
		},
	}

	summary := ComputeSalary("e1", "An", "Barista", decimal.RequireFromString("30000"), 3, 2026, sheets)

	assert.Equal(t, "16", summary.TotalHours.String())
	assert.Equal(t, "480000", summary.BaseSalary.String())
	require.NotNil(t, summary.TotalSalary)
	assert.Equal(t, "510000", summary.TotalSalary.String())
}

func TestBuildEmployeeSalaryView(t *testing.T) {
	checkOut := "12:00"
	sheets := []timesheet.Timesheet{
		{
			Day:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			CheckIn:  "08:00",
			CheckOut: &checkOut,
			Status:   timesheet.StatusCompleted,
			Bonus:    decimal.Zero,
			Fine:     decimal.Zero,
		},
		{
			Day:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			CheckIn:  "08:00",
			CheckOut: &checkOut,
			Status:   timesheet.StatusCompleted,
			Bonus:    decimal.RequireFromString("10000"),
			Fine:     decimal.Zero,
		},
	}
	summary := ComputeSalary("e1", "An", "Server", decimal.RequireFromString("30000"), 3, 2026, sheets)

	view, err := BuildEmployeeSalaryView(summary, sheets)
	require.NoError(t, err)

	assert.Equal(t, "An", view.EmployeeName)
	assert.Equal(t, "250000", view.TotalSalary)
	assert.Equal(t, "250.000 VND", view.DisplaySalary)

	require.Len(t, view.Days, 2)
	assert.Equal(t, "2026-03-02", view.Days[0].Day)
	assert.Equal(t, "2026-03-05", view.Days[1].Day)
	assert.Equal(t, "4.00", view.Days[0].WorkedHours)
	assert.Equal(t, "0", view.Days[0].Fine)
}

func TestBuildEmployeeSalaryViewMissingTotal(t *testing.T) {
	summary := SalarySummary{EmployeeID: "e1", Month: 3, Year: 2026}

	_, err := BuildEmployeeSalaryView(summary, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTotalSalary)
}
