package payroll

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var vndPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount the way the payroll pages display money:
// Vietnamese digit grouping, no decimals, trailing currency code.
// 1234567 becomes "1.234.567 VND".
func FormatVND(amount decimal.Decimal) string {
	return vndPrinter.Sprintf("%d", amount.Round(0).IntPart()) + " VND"
}

// BuildPeriodSummary turns the period's payroll rows into the display
// view-model: rows sorted by employee name, every amount formatted, and a
// grand total across employees. A row without a total salary aborts the
// whole summary rather than slipping a bogus amount into the table.
func BuildPeriodSummary(month, year int, rows []Payroll) (PeriodSummaryResponse, error) {
	out := PeriodSummaryResponse{
		Month: month,
		Year:  year,
		Rows:  make([]PayrollResponse, 0, len(rows)),
	}

	total := decimal.Zero
	for _, row := range rows {
		if row.TotalSalary == nil {
			return PeriodSummaryResponse{}, fmt.Errorf("payroll %s: %w", row.ID, ErrMissingTotalSalary)
		}
		out.Rows = append(out.Rows, toResponse(row))
		total = total.Add(*row.TotalSalary)
	}

	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].EmployeeName < out.Rows[j].EmployeeName
	})

	out.TotalSalary = total.String()
	out.DisplayTotal = FormatVND(total)
	return out, nil
}

func toResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Month:      p.Month,
		Year:       p.Year,
		TotalHours: p.TotalHours.StringFixed(2),
		HourlyWage: p.HourlyWage.String(),
		BaseSalary: p.BaseSalary.String(),
		TotalBonus: p.TotalBonus.String(),
		TotalFine:  p.TotalFine.String(),
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.Position != nil {
		resp.Position = *p.Position
	}
	if p.TotalSalary != nil {
		resp.TotalSalary = p.TotalSalary.String()
		resp.DisplaySalary = FormatVND(*p.TotalSalary)
	}
	return resp
}
