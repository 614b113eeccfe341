package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/assignment"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	a.id, a.employee_id, a.day, a.work_schedule_id, a.role, a.status, a.created_at, a.updated_at,
	e.full_name, e.position, ws.name, ws.time_start, ws.time_end
`

const assignmentJoins = `
	FROM assignments a
	JOIN employees e ON e.id = a.employee_id
	JOIN work_schedules ws ON ws.id = a.work_schedule_id
`

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (
			id, employee_id, day, work_schedule_id, role, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.Day, a.WorkScheduleID, a.Role, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return assignment.Assignment{}, err
	}

	return a, nil
}

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT" + assignmentColumns + assignmentJoins + "WHERE a.id = $1"

	var a assignment.Assignment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Day, &a.WorkScheduleID, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.EmployeePosition, &a.WorkScheduleName, &a.TimeStart, &a.TimeEnd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, err
	}

	return a, nil
}

// List implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND a.day >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND a.day <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query := "SELECT" + assignmentColumns + assignmentJoins + where + " ORDER BY a.day ASC, a.created_at ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Day, &a.WorkScheduleID, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.EmployeePosition, &a.WorkScheduleName, &a.TimeStart, &a.TimeEnd,
		); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdateStatus implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) UpdateStatus(ctx context.Context, id string, status assignment.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// Delete implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// HasPendingRequest implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) HasPendingRequest(ctx context.Context, employeeID string, day time.Time, workScheduleID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM assignments
			WHERE employee_id = $1 AND day = $2 AND work_schedule_id = $3 AND status = 'Pending'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, day, workScheduleID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
