package shift

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/schedule"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/shift"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:        shiftRepo,
		EmployeeRepository:     employeeRepo,
		WorkScheduleRepository: scheduleRepo,
	}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	day, _ := validator.IsValidDate(req.Day)

	if _, err := s.WorkScheduleRepository.GetByID(ctx, req.WorkScheduleID); err != nil {
		return shift.ShiftResponse{}, err
	}

	entries, err := s.buildEntries(ctx, req.Employees)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to generate shift id: %w", err)
	}

	created, err := s.ShiftRepository.Create(ctx, shift.ShiftRecord{
		ID:             id.String(),
		Day:            day,
		WorkScheduleID: req.WorkScheduleID,
		Entries:        entries,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toResponse(created), nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) ([]shift.DayShiftsResponse, error) {
	days, err := s.listByDay(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]shift.DayShiftsResponse, 0, len(days))
	for _, day := range days {
		dayResp := shift.DayShiftsResponse{
			Day:    day.Day,
			Shifts: make([]shift.ShiftResponse, 0, len(day.Shifts)),
		}
		for _, rec := range day.Shifts {
			dayResp.Shifts = append(dayResp.Shifts, toResponse(rec))
		}
		resp = append(resp, dayResp)
	}
	return resp, nil
}

// GetRoster implements shift.ShiftService.
func (s *ShiftServiceImpl) GetRoster(ctx context.Context, filter shift.ShiftFilter) ([]shift.RosterRow, error) {
	days, err := s.listByDay(ctx, filter)
	if err != nil {
		return nil, err
	}
	return shift.GroupRoster(days), nil
}

// UpdateShiftEmployees implements shift.ShiftService. The new employee set
// replaces the day's full staffing for the work schedule: entries land on
// the oldest record and any duplicate records are removed, so stale
// staffing cannot survive on a record the update never touched.
func (s *ShiftServiceImpl) UpdateShiftEmployees(ctx context.Context, req shift.UpdateShiftEmployeesRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	day, _ := validator.IsValidDate(req.Day)

	recs, err := s.ShiftRepository.ListByDayAndSchedule(ctx, day, req.WorkScheduleID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to list shifts for day and schedule: %w", err)
	}
	if len(recs) == 0 {
		return shift.ShiftResponse{}, shift.ErrNoShiftForSchedule
	}

	entries, err := s.buildEntries(ctx, req.Employees)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.ShiftRepository.ReplaceEntries(ctx, recs[0].ID, entries); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to replace shift entries: %w", err)
	}
	for _, dup := range recs[1:] {
		if err := s.ShiftRepository.Delete(ctx, dup.ID); err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("failed to remove duplicate shift record: %w", err)
		}
	}

	updated, err := s.ShiftRepository.GetByID(ctx, recs[0].ID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to reload shift: %w", err)
	}
	return toResponse(updated), nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.ShiftRepository.Delete(ctx, id)
}

// DeleteWorkScheduleShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteWorkScheduleShifts(ctx context.Context, dayStr string, workScheduleID string) error {
	day, ok := validator.IsValidDate(dayStr)
	if !ok {
		return validator.ValidationErrors{{Field: "day", Message: "must be a valid YYYY-MM-DD date"}}
	}
	if validator.IsEmpty(workScheduleID) {
		return validator.ValidationErrors{{Field: "work_schedule_id", Message: "is required"}}
	}
	return s.ShiftRepository.DeleteByDayAndSchedule(ctx, day, workScheduleID)
}

// buildEntries turns request rows into shift entries, dropping unstaffed
// rows and rejecting roles the employee's position is not eligible for.
func (s *ShiftServiceImpl) buildEntries(ctx context.Context, reqs []shift.ShiftEntryRequest) ([]shift.ShiftEntry, error) {
	entries := make([]shift.ShiftEntry, 0, len(reqs))
	for _, req := range reqs {
		if req.EmployeeID == "" {
			continue
		}

		emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		role := shift.Role(req.RoleInShift)
		if !shift.RoleAllowed(emp.Position, role) {
			return nil, fmt.Errorf("%s as %s: %w", emp.FullName, role, shift.ErrRoleNotAllowed)
		}

		entries = append(entries, shift.ShiftEntry{
			EmployeeID:  req.EmployeeID,
			RoleInShift: role,
		})
	}
	if len(entries) == 0 {
		return nil, shift.ErrNoEmployees
	}
	return entries, nil
}

// listByDay fetches shift records and buckets them into per-day groups in
// day order.
func (s *ShiftServiceImpl) listByDay(ctx context.Context, filter shift.ShiftFilter) ([]shift.DayShifts, error) {
	recs, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	var days []shift.DayShifts
	index := make(map[string]int)
	for _, rec := range recs {
		key := rec.Day.Format("2006-01-02")
		at, ok := index[key]
		if !ok {
			at = len(days)
			index[key] = at
			days = append(days, shift.DayShifts{Day: key})
		}
		days[at].Shifts = append(days[at].Shifts, rec)
	}
	return days, nil
}

func toResponse(rec shift.ShiftRecord) shift.ShiftResponse {
	resp := shift.ShiftResponse{
		ID:             rec.ID,
		Day:            rec.Day.Format("2006-01-02"),
		WorkScheduleID: rec.WorkScheduleID,
		Employees:      make([]shift.ShiftEntryResponse, 0, len(rec.Entries)),
	}
	if rec.WorkScheduleName != nil {
		resp.WorkScheduleName = *rec.WorkScheduleName
	}
	if rec.TimeStart != nil {
		resp.TimeStart = *rec.TimeStart
	}
	if rec.TimeEnd != nil {
		resp.TimeEnd = *rec.TimeEnd
	}
	for _, entry := range rec.Entries {
		entryResp := shift.ShiftEntryResponse{
			EmployeeID:  entry.EmployeeID,
			RoleInShift: string(entry.RoleInShift),
		}
		if entry.EmployeeName != nil {
			entryResp.EmployeeName = *entry.EmployeeName
		}
		resp.Employees = append(resp.Employees, entryResp)
	}
	return resp
}
