package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/payroll"
)

var payrollHeaders = []string{
	"No", "Employee", "Position", "Total Hours", "Hourly Wage",
	"Base Salary", "Bonus", "Fine", "Total Salary",
}

// WritePeriodSummary writes the period payroll table to an xlsx file under
// dir and returns the file path. The last data row is the grand total.
func WritePeriodSummary(dir string, summary payroll.PeriodSummaryResponse) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range payrollHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range summary.Rows {
		values := []interface{}{
			i + 1, row.EmployeeName, row.Position, row.TotalHours, row.HourlyWage,
			row.BaseSalary, row.TotalBonus, row.TotalFine, row.DisplaySalary,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("failed to write payroll row: %w", err)
			}
		}
	}

	totalRow := len(summary.Rows) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "Total"); err != nil {
		return "", fmt.Errorf("failed to write total label: %w", err)
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("I%d", totalRow), summary.DisplayTotal); err != nil {
		return "", fmt.Errorf("failed to write total amount: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("payroll-%04d-%02d.xlsx", summary.Year, summary.Month))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save payroll export: %w", err)
	}
	return path, nil
}
