package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, full_name, email, phone_number, address, position, hourly_wage, password_hash, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.Email, emp.PhoneNumber, emp.Address, emp.Position, emp.HourlyWage, emp.PasswordHash,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, phone_number, address, position, hourly_wage, password_hash, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.PhoneNumber, &emp.Address,
		&emp.Position, &emp.HourlyWage, &emp.PasswordHash, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, phone_number, address, position, hourly_wage, password_hash, created_at, updated_at
		FROM employees
		WHERE email = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.PhoneNumber, &emp.Address,
		&emp.Position, &emp.HourlyWage, &emp.PasswordHash, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Name != nil {
		where += fmt.Sprintf(" AND full_name ILIKE $%d", argPos)
		args = append(args, "%"+*filter.Name+"%")
		argPos++
	}
	if filter.Position != nil {
		where += fmt.Sprintf(" AND position = $%d", argPos)
		args = append(args, *filter.Position)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees" + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, full_name, email, phone_number, address, position, hourly_wage, password_hash, created_at, updated_at
		FROM employees
	` + where + fmt.Sprintf(" ORDER BY full_name ASC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var emps []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Email, &emp.PhoneNumber, &emp.Address,
			&emp.Position, &emp.HourlyWage, &emp.PasswordHash, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		emps = append(emps, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return emps, total, nil
}

// ListWithPosition implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListWithPosition(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, position
		FROM employees
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emps []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.FullName, &emp.Position); err != nil {
			return nil, err
		}
		emps = append(emps, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emps, nil
}

// CountByPosition implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByPosition(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT position, COUNT(*)
		FROM employees
		GROUP BY position
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var position string
		var count int64
		if err := rows.Scan(&position, &count); err != nil {
			return nil, err
		}
		counts[position] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, phone_number = $3, address = $4, position = $5, hourly_wage = $6, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, emp.ID, emp.FullName, emp.PhoneNumber, emp.Address, emp.Position, emp.HourlyWage)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM employees
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
