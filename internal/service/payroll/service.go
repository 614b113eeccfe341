package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/payroll"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/timesheet"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/export"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
	"github.com/brewhub-app/brewhub-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db        *database.DB
	exportDir string
	payroll.PayrollRepository
	timesheet.TimesheetRepository
	employee.EmployeeRepository
}

func NewPayrollService(
	db *database.DB,
	exportDir string,
	payrollRepo payroll.PayrollRepository,
	timesheetRepo timesheet.TimesheetRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                  db,
		exportDir:           exportDir,
		PayrollRepository:   payrollRepo,
		TimesheetRepository: timesheetRepo,
		EmployeeRepository:  employeeRepo,
	}
}

// GeneratePayroll implements payroll.PayrollService. Every employee with
// completed timesheets in the period gets a recomputed payroll row; the
// rows are upserted in one transaction so a half-written period can never
// be observed.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PeriodSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	summaries, _, err := s.computePeriod(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}
	if len(summaries) == 0 {
		return payroll.PeriodSummaryResponse{}, payroll.ErrEmptyPeriod
	}

	rows := make([]payroll.Payroll, 0, len(summaries))
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, summary := range summaries {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate payroll id: %w", err)
			}
			name := summary.EmployeeName
			position := summary.Position
			row := payroll.Payroll{
				ID:           id.String(),
				EmployeeID:   summary.EmployeeID,
				Month:        summary.Month,
				Year:         summary.Year,
				TotalHours:   summary.TotalHours,
				HourlyWage:   summary.HourlyWage,
				BaseSalary:   summary.BaseSalary,
				TotalBonus:   summary.TotalBonus,
				TotalFine:    summary.TotalFine,
				TotalSalary:  summary.TotalSalary,
				EmployeeName: &name,
				Position:     &position,
			}
			stored, err := s.PayrollRepository.Upsert(txCtx, row)
			if err != nil {
				return fmt.Errorf("failed to upsert payroll for employee %s: %w", summary.EmployeeID, err)
			}
			stored.EmployeeName = &name
			stored.Position = &position
			rows = append(rows, stored)
		}
		return nil
	})
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	return payroll.BuildPeriodSummary(req.Month, req.Year, rows)
}

// GetPeriodSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, month, year int) (payroll.PeriodSummaryResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return payroll.PeriodSummaryResponse{}, payroll.ErrInvalidPayrollPeriod
	}

	rows, err := s.PayrollRepository.List(ctx, payroll.PayrollFilter{Month: &month, Year: &year})
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to list payrolls: %w", err)
	}
	return payroll.BuildPeriodSummary(month, year, rows)
}

// GetEmployeePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeePayroll(ctx context.Context, employeeID string, month, year int) (payroll.PayrollResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return payroll.PayrollResponse{}, payroll.ErrInvalidPayrollPeriod
	}

	row, err := s.PayrollRepository.GetByEmployeeAndPeriod(ctx, employeeID, month, year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if row.TotalSalary == nil {
		return payroll.PayrollResponse{}, fmt.Errorf("payroll %s: %w", row.ID, payroll.ErrMissingTotalSalary)
	}

	summary, err := payroll.BuildPeriodSummary(month, year, []payroll.Payroll{row})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return summary.Rows[0], nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	rows, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}

	summary, err := payroll.BuildPeriodSummary(0, 0, rows)
	if err != nil {
		return nil, err
	}
	return summary.Rows, nil
}

// DeletePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	if _, err := s.PayrollRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.PayrollRepository.Delete(ctx, id)
}

// GetEmployeeSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeSalary(ctx context.Context, employeeID string, month, year int) (payroll.EmployeeSalaryResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return payroll.EmployeeSalaryResponse{}, payroll.ErrInvalidPayrollPeriod
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeSalaryResponse{}, err
	}

	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1).Format("2006-01-02")
	status := string(timesheet.StatusCompleted)
	sheets, err := s.TimesheetRepository.List(ctx, timesheet.TimesheetFilter{
		EmployeeID: &employeeID,
		StartDate:  &start,
		EndDate:    &end,
		Status:     &status,
	})
	if err != nil {
		return payroll.EmployeeSalaryResponse{}, fmt.Errorf("failed to list timesheets: %w", err)
	}

	summary := payroll.ComputeSalary(emp.ID, emp.FullName, string(emp.Position), emp.HourlyWage, month, year, sheets)
	return payroll.BuildEmployeeSalaryView(summary, sheets)
}

// GetPeriodSalaries implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriodSalaries(ctx context.Context, month, year int) ([]payroll.EmployeeSalaryResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return nil, payroll.ErrInvalidPayrollPeriod
	}

	summaries, sheetsByEmployee, err := s.computePeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	views := make([]payroll.EmployeeSalaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		view, err := payroll.BuildEmployeeSalaryView(summary, sheetsByEmployee[summary.EmployeeID])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// ExportPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportPeriod(ctx context.Context, month, year int) (string, error) {
	summary, err := s.GetPeriodSummary(ctx, month, year)
	if err != nil {
		return "", err
	}
	if len(summary.Rows) == 0 {
		return "", payroll.ErrEmptyPeriod
	}
	return export.WritePeriodSummary(s.exportDir, summary)
}

// computePeriod folds the period's completed timesheets into one salary
// summary per employee, in first-seen order.
func (s *PayrollServiceImpl) computePeriod(ctx context.Context, month, year int) ([]payroll.SalarySummary, map[string][]timesheet.Timesheet, error) {
	sheets, err := s.TimesheetRepository.ListForPeriod(ctx, month, year)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list period timesheets: %w", err)
	}

	byEmployee := make(map[string][]timesheet.Timesheet)
	var order []string
	for _, sheet := range sheets {
		if _, ok := byEmployee[sheet.EmployeeID]; !ok {
			order = append(order, sheet.EmployeeID)
		}
		byEmployee[sheet.EmployeeID] = append(byEmployee[sheet.EmployeeID], sheet)
	}

	summaries := make([]payroll.SalarySummary, 0, len(order))
	for _, employeeID := range order {
		group := byEmployee[employeeID]

		name := ""
		wage := decimal.Zero
		if group[0].EmployeeName != nil {
			name = *group[0].EmployeeName
		}
		if group[0].HourlyWage != nil {
			wage = *group[0].HourlyWage
		}
		position := ""
		if emp, err := s.EmployeeRepository.GetByID(ctx, employeeID); err == nil {
			position = string(emp.Position)
		}

		summaries = append(summaries, payroll.ComputeSalary(employeeID, name, position, wage, month, year, group))
	}
	return summaries, byEmployee, nil
}
