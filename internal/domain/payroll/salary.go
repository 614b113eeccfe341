package payroll

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/timesheet"
)

// SalarySummary is one employee's computed pay for one month. It is
// derived from completed timesheets on demand and only persisted when a
// manager snapshots the period into payroll rows.
type SalarySummary struct {
	EmployeeID   string
	EmployeeName string
	Position     string
	Month        int
	Year         int
	TotalHours   decimal.Decimal
	HourlyWage   decimal.Decimal
	BaseSalary   decimal.Decimal
	TotalBonus   decimal.Decimal
	TotalFine    decimal.Decimal
	TotalSalary  *decimal.Decimal
}

// ComputeSalary folds an employee's completed timesheets for one month
// into a salary summary: hours × hourly wage + bonus − fine.
func ComputeSalary(employeeID, employeeName, position string, hourlyWage decimal.Decimal, month, year int, sheets []timesheet.Timesheet) SalarySummary {
	summary := SalarySummary{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Position:     position,
		Month:        month,
		Year:         year,
		HourlyWage:   hourlyWage,
		TotalHours:   decimal.Zero,
		TotalBonus:   decimal.Zero,
		TotalFine:    decimal.Zero,
	}

	for _, sheet := range sheets {
		if sheet.Status != timesheet.StatusCompleted {
			continue
		}
		summary.TotalHours = summary.TotalHours.Add(sheet.WorkedHours())
		summary.TotalBonus = summary.TotalBonus.Add(sheet.Bonus)
		summary.TotalFine = summary.TotalFine.Add(sheet.Fine)
	}

	summary.BaseSalary = summary.TotalHours.Mul(hourlyWage)
	total := summary.BaseSalary.Add(summary.TotalBonus).Sub(summary.TotalFine)
	summary.TotalSalary = &total
	return summary
}

type DaySalaryRow struct {
	Day         string `json:"day"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	WorkedHours string `json:"worked_hours"`
	Bonus       string `json:"bonus"`
	Fine        string `json:"fine"`
}

// EmployeeSalaryResponse is the view behind the employee payroll page:
// the month's summary with every amount formatted, plus one row per
// completed timesheet.
type EmployeeSalaryResponse struct {
	EmployeeID    string         `json:"employee_id"`
	EmployeeName  string         `json:"employee_name"`
	Position      string         `json:"position,omitempty"`
	Month         int            `json:"month"`
	Year          int            `json:"year"`
	TotalHours    string         `json:"total_hours"`
	HourlyWage    string         `json:"hourly_wage"`
	BaseSalary    string         `json:"base_salary"`
	TotalBonus    string         `json:"total_bonus"`
	TotalFine     string         `json:"total_fine"`
	TotalSalary   string         `json:"total_salary"`
	DisplaySalary string         `json:"display_salary"`
	Days          []DaySalaryRow `json:"days"`
}

// BuildEmployeeSalaryView formats a salary summary and its timesheets for
// display. A summary without a total salary aborts instead of rendering a
// bogus amount. Missing bonus or fine on a sheet displays as zero.
func BuildEmployeeSalaryView(summary SalarySummary, sheets []timesheet.Timesheet) (EmployeeSalaryResponse, error) {
	if summary.TotalSalary == nil {
		return EmployeeSalaryResponse{}, fmt.Errorf("employee %s: %w", summary.EmployeeID, ErrMissingTotalSalary)
	}

	resp := EmployeeSalaryResponse{
		EmployeeID:    summary.EmployeeID,
		EmployeeName:  summary.EmployeeName,
		Position:      summary.Position,
		Month:         summary.Month,
		Year:          summary.Year,
		TotalHours:    summary.TotalHours.StringFixed(2),
		HourlyWage:    summary.HourlyWage.String(),
		BaseSalary:    summary.BaseSalary.String(),
		TotalBonus:    summary.TotalBonus.String(),
		TotalFine:     summary.TotalFine.String(),
		TotalSalary:   summary.TotalSalary.String(),
		DisplaySalary: FormatVND(*summary.TotalSalary),
		Days:          make([]DaySalaryRow, 0, len(sheets)),
	}

	for _, sheet := range sheets {
		if sheet.Status != timesheet.StatusCompleted {
			continue
		}
		checkOut := ""
		if sheet.CheckOut != nil {
			checkOut = *sheet.CheckOut
		}
		resp.Days = append(resp.Days, DaySalaryRow{
			Day:         sheet.Day.Format("2006-01-02"),
			CheckIn:     sheet.CheckIn,
			CheckOut:    checkOut,
			WorkedHours: sheet.WorkedHours().StringFixed(2),
			Bonus:       sheet.Bonus.String(),
			Fine:        sheet.Fine.String(),
		})
	}

	sort.SliceStable(resp.Days, func(i, j int) bool {
		return resp.Days[i].Day < resp.Days[j].Day
	})

	return resp, nil
}
