package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/payroll"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.year, p.total_hours, p.hourly_wage,
	p.base_salary, p.total_bonus, p.total_fine, p.total_salary, p.created_at, p.updated_at,
	e.full_name, e.email, e.position
`

const payrollJoins = `
	FROM payrolls p
	JOIN employees e ON e.id = p.employee_id
`

// Upsert implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Upsert(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, month, year, total_hours, hourly_wage,
			base_salary, total_bonus, total_fine, total_salary, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			total_hours = EXCLUDED.total_hours,
			hourly_wage = EXCLUDED.hourly_wage,
			base_salary = EXCLUDED.base_salary,
			total_bonus = EXCLUDED.total_bonus,
			total_fine = EXCLUDED.total_fine,
			total_salary = EXCLUDED.total_salary,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.Month, p.Year, p.TotalHours, p.HourlyWage,
		p.BaseSalary, p.TotalBonus, p.TotalFine, p.TotalSalary,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payroll.Payroll{}, err
	}

	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT" + payrollColumns + payrollJoins + "WHERE p.id = $1"

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}
	return p, nil
}

// GetByEmployeeAndPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT" + payrollColumns + payrollJoins +
		"WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3"

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}
	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Month != nil {
		where += fmt.Sprintf(" AND p.month = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND p.year = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	query := "SELECT" + payrollColumns + payrollJoins + where + " ORDER BY e.full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.TotalHours, &p.HourlyWage,
		&p.BaseSalary, &p.TotalBonus, &p.TotalFine, &p.TotalSalary, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeEmail, &p.Position,
	)
	return p, err
}
