package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/shift"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository. The record and its entries are
// written together; callers wanting atomicity with other writes run this
// inside WithTransaction.
func (r *shiftRepositoryImpl) Create(ctx context.Context, rec shift.ShiftRecord) (shift.ShiftRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, day, work_schedule_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rec.ID, rec.Day, rec.WorkScheduleID).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return shift.ShiftRecord{}, err
	}

	if err := r.insertEntries(ctx, rec.ID, rec.Entries); err != nil {
		return shift.ShiftRecord{}, err
	}

	return rec, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.ShiftRecord, error) {
	recs, err := r.query(ctx, " WHERE s.id = $1", []interface{}{id})
	if err != nil {
		return shift.ShiftRecord{}, err
	}
	if len(recs) == 0 {
		return shift.ShiftRecord{}, shift.ErrShiftNotFound
	}
	return recs[0], nil
}

// GetByDayAndSchedule implements shift.ShiftRepository. The oldest record
// wins; query orders by created_at.
func (r *shiftRepositoryImpl) GetByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) (*shift.ShiftRecord, error) {
	recs, err := r.ListByDayAndSchedule(ctx, day, workScheduleID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// ListByDayAndSchedule implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) ([]shift.ShiftRecord, error) {
	return r.query(ctx, " WHERE s.day = $1 AND s.work_schedule_id = $2", []interface{}{day, workScheduleID})
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftRecord, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Day != nil {
		where += fmt.Sprintf(" AND s.day = $%d", argPos)
		args = append(args, *filter.Day)
		argPos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND s.day >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND s.day <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	return r.query(ctx, where, args)
}

// ReplaceEntries implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ReplaceEntries(ctx context.Context, shiftID string, entries []shift.ShiftEntry) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM shift_entries WHERE shift_id = $1`, shiftID); err != nil {
		return err
	}
	if err := r.insertEntries(ctx, shiftID, entries); err != nil {
		return err
	}

	_, err := q.Exec(ctx, `UPDATE shifts SET updated_at = NOW() WHERE id = $1`, shiftID)
	return err
}

// AddEntries implements shift.ShiftRepository. Employees already present
// on the record keep their existing role.
func (r *shiftRepositoryImpl) AddEntries(ctx context.Context, shiftID string, entries []shift.ShiftEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_entries (shift_id, employee_id, role_in_shift)
		VALUES ($1, $2, $3)
		ON CONFLICT (shift_id, employee_id) DO NOTHING
	`
	for _, entry := range entries {
		if _, err := q.Exec(ctx, query, shiftID, entry.EmployeeID, entry.RoleInShift); err != nil {
			return err
		}
	}

	_, err := q.Exec(ctx, `UPDATE shifts SET updated_at = NOW() WHERE id = $1`, shiftID)
	return err
}

// Delete implements shift.ShiftRepository. Entries go with the record via
// ON DELETE CASCADE.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// DeleteByDayAndSchedule implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) DeleteByDayAndSchedule(ctx context.Context, day time.Time, workScheduleID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE day = $1 AND work_schedule_id = $2`, day, workScheduleID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return shift.ErrNoShiftForSchedule
	}

	return nil
}

func (r *shiftRepositoryImpl) insertEntries(ctx context.Context, shiftID string, entries []shift.ShiftEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_entries (shift_id, employee_id, role_in_shift)
		VALUES ($1, $2, $3)
	`
	for _, entry := range entries {
		if _, err := q.Exec(ctx, query, shiftID, entry.EmployeeID, entry.RoleInShift); err != nil {
			if isUniqueViolation(err) {
				return shift.ErrDuplicateEmployee
			}
			return err
		}
	}
	return nil
}

// query fetches shift records with the joined work schedule fields, then
// attaches entries with employee names. Entries keep insertion order so
// the roster grouper sees the same order the staffing was saved in.
func (r *shiftRepositoryImpl) query(ctx context.Context, where string, args []interface{}) ([]shift.ShiftRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.day, s.work_schedule_id, s.created_at, s.updated_at,
		       ws.name, ws.time_start, ws.time_end
		FROM shifts s
		JOIN work_schedules ws ON ws.id = s.work_schedule_id
	` + where + `
		ORDER BY s.day ASC, ws.time_start ASC, s.created_at ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []shift.ShiftRecord
	index := make(map[string]int)
	for rows.Next() {
		var rec shift.ShiftRecord
		if err := rows.Scan(
			&rec.ID, &rec.Day, &rec.WorkScheduleID, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.WorkScheduleName, &rec.TimeStart, &rec.TimeEnd,
		); err != nil {
			return nil, err
		}
		index[rec.ID] = len(recs)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return recs, nil
	}

	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID)
	}

	entryQuery := `
		SELECT se.shift_id, se.employee_id, se.role_in_shift, e.full_name
		FROM shift_entries se
		JOIN employees e ON e.id = se.employee_id
		WHERE se.shift_id = ANY($1)
		ORDER BY se.id ASC
	`
	entryRows, err := q.Query(ctx, entryQuery, ids)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var shiftID string
		var entry shift.ShiftEntry
		if err := entryRows.Scan(&shiftID, &entry.EmployeeID, &entry.RoleInShift, &entry.EmployeeName); err != nil {
			return nil, err
		}
		at, ok := index[shiftID]
		if !ok {
			continue
		}
		recs[at].Entries = append(recs[at].Entries, entry)
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}
