package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/schedule"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// Create implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (
			id, name, time_start, time_end, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, ws.ID, ws.Name, ws.TimeStart, ws.TimeEnd).Scan(&ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return schedule.WorkSchedule{}, schedule.ErrNameExists
		}
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, time_start, time_end, created_at, updated_at
		FROM work_schedules
		WHERE id = $1
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id).Scan(&ws.ID, &ws.Name, &ws.TimeStart, &ws.TimeEnd, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// List implements schedule.WorkScheduleRepository. Ordered by start time
// so pickers show the day in chronological order.
func (r *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, time_start, time_end, created_at, updated_at
		FROM work_schedules
		ORDER BY time_start ASC, name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.TimeStart, &ws.TimeEnd, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Update implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Update(ctx context.Context, req schedule.UpdateWorkScheduleRequest) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_schedules
		SET name = COALESCE($2, name),
		    time_start = COALESCE($3, time_start),
		    time_end = COALESCE($4, time_end),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, time_start, time_end, created_at, updated_at
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, req.ID, req.Name, req.TimeStart, req.TimeEnd).Scan(
		&ws.ID, &ws.Name, &ws.TimeStart, &ws.TimeEnd, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		if isUniqueViolation(err) {
			return schedule.WorkSchedule{}, schedule.ErrNameExists
		}
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// Delete implements schedule.WorkScheduleRepository. Schedules referenced
// by shift records are protected by the FK and reported as in-use.
func (r *workScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM work_schedules
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return schedule.ErrWorkScheduleInUse
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return schedule.ErrWorkScheduleNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return hasSQLState(err, "23505")
}

func isForeignKeyViolation(err error) bool {
	return hasSQLState(err, "23503")
}

func hasSQLState(err error, state string) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == state
	}
	return false
}
