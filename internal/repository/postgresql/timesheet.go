package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/timesheet"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	t.id, t.employee_id, t.work_schedule_id, t.day, t.check_in, t.check_out, t.status,
	COALESCE(t.bonus, 0), COALESCE(t.fine, 0), t.created_at, t.updated_at,
	e.full_name, e.hourly_wage, ws.name, ws.time_start, ws.time_end
`

const timesheetJoins = `
	FROM timesheets t
	JOIN employees e ON e.id = t.employee_id
	JOIN work_schedules ws ON ws.id = t.work_schedule_id
`

// Create implements timesheet.TimesheetRepository. A partial unique index
// on (employee_id, day) WHERE status = 'InProgress' backs the
// one-open-timesheet rule even under concurrent check-ins.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			id, employee_id, work_schedule_id, day, check_in, status, bonus, fine, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.EmployeeID, t.WorkScheduleID, t.Day, t.CheckIn, t.Status, t.Bonus, t.Fine,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return timesheet.Timesheet{}, timesheet.ErrAlreadyCheckedIn
		}
		return timesheet.Timesheet{}, err
	}

	return t, nil
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT" + timesheetColumns + timesheetJoins + "WHERE t.id = $1"

	t, err := scanTimesheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}
	return t, nil
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND t.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Day != nil {
		where += fmt.Sprintf(" AND t.day = $%d", argPos)
		args = append(args, *filter.Day)
		argPos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND t.day >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND t.day <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND t.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	query := "SELECT" + timesheetColumns + timesheetJoins + where + " ORDER BY t.day ASC, t.check_in ASC"

	return r.queryMany(ctx, query, args)
}

// GetOpenForDay implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetOpenForDay(ctx context.Context, employeeID string, day time.Time) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT" + timesheetColumns + timesheetJoins +
		"WHERE t.employee_id = $1 AND t.day = $2 AND t.status = 'InProgress'"

	t, err := scanTimesheet(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}
	return t, nil
}

// ListForPeriod implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListForPeriod(ctx context.Context, month, year int) ([]timesheet.Timesheet, error) {
	query := "SELECT" + timesheetColumns + timesheetJoins + `
		WHERE t.status = 'Completed'
		  AND EXTRACT(MONTH FROM t.day) = $1
		  AND EXTRACT(YEAR FROM t.day) = $2
		ORDER BY e.full_name ASC, t.day ASC
	`

	return r.queryMany(ctx, query, []interface{}{month, year})
}

// SetCheckOut implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) SetCheckOut(ctx context.Context, id string, checkOut string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET check_out = $2, status = 'Completed', updated_at = NOW()
		WHERE id = $1 AND status = 'InProgress'
	`

	commandTag, err := q.Exec(ctx, query, id, checkOut)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

// SetAdjustments implements timesheet.TimesheetRepository. Nil keeps the
// stored value.
func (r *timesheetRepositoryImpl) SetAdjustments(ctx context.Context, id string, bonus, fine *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET bonus = COALESCE($2::numeric, bonus),
		    fine = COALESCE($3::numeric, fine),
		    updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, bonus, fine)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

// Delete implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM timesheets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

func (r *timesheetRepositoryImpl) queryMany(ctx context.Context, query string, args []interface{}) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sheets, nil
}

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.WorkScheduleID, &t.Day, &t.CheckIn, &t.CheckOut, &t.Status,
		&t.Bonus, &t.Fine, &t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName, &t.HourlyWage, &t.WorkScheduleName, &t.TimeStart, &t.TimeEnd,
	)
	return t, err
}
