package timesheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/shift"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/timesheet"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
	"github.com/brewhub-app/brewhub-backend-go/internal/repository/postgresql"
)

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimesheetRepository
	shift.ShiftRepository
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepo timesheet.TimesheetRepository,
	shiftRepo shift.ShiftRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:                  db,
		TimesheetRepository: timesheetRepo,
		ShiftRepository:     shiftRepo,
	}
}

// CheckIn implements timesheet.TimesheetService. The open-timesheet check
// and the insert run in one transaction, so submitting twice for the same
// day returns the first timesheet instead of opening a second one.
func (s *TimesheetServiceImpl) CheckIn(ctx context.Context, req timesheet.CheckInRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	day, _ := validator.IsValidDate(req.Day)

	// Several records may exist for the day and schedule; being staffed on
	// any of them counts.
	recs, err := s.ShiftRepository.ListByDayAndSchedule(ctx, day, req.WorkScheduleID)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to list shifts for day and schedule: %w", err)
	}
	scheduled := false
	for _, rec := range recs {
		if rec.HasEmployee(req.EmployeeID) {
			scheduled = true
			break
		}
	}
	if !scheduled {
		return timesheet.TimesheetResponse{}, timesheet.ErrNotScheduledForDay
	}

	var sheet timesheet.Timesheet
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		open, err := s.TimesheetRepository.GetOpenForDay(txCtx, req.EmployeeID, day)
		if err == nil {
			sheet = open
			return nil
		}
		if !errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return fmt.Errorf("failed to check open timesheet: %w", err)
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate timesheet id: %w", err)
		}
		sheet, err = s.TimesheetRepository.Create(txCtx, timesheet.Timesheet{
			ID:             id.String(),
			EmployeeID:     req.EmployeeID,
			WorkScheduleID: req.WorkScheduleID,
			Day:            day,
			CheckIn:        req.CheckIn,
			Status:         timesheet.StatusInProgress,
			Bonus:          decimal.Zero,
			Fine:           decimal.Zero,
		})
		if err != nil {
			return fmt.Errorf("failed to create timesheet: %w", err)
		}
		return nil
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return toResponse(sheet), nil
}

// CheckOut implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CheckOut(ctx context.Context, id string, req timesheet.CheckOutRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	sheet, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if sheet.Status == timesheet.StatusCompleted {
		return timesheet.TimesheetResponse{}, timesheet.ErrAlreadyCheckedOut
	}
	if req.EmployeeID != "" && sheet.EmployeeID != req.EmployeeID {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
	}

	if err := s.TimesheetRepository.SetCheckOut(ctx, id, req.CheckOut); err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	sheet.CheckOut = &req.CheckOut
	sheet.Status = timesheet.StatusCompleted
	return toResponse(sheet), nil
}

// GetTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	sheet, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return toResponse(sheet), nil
}

// ListTimesheets implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListTimesheets(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.TimesheetResponse, error) {
	sheets, err := s.TimesheetRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}

	resp := make([]timesheet.TimesheetResponse, 0, len(sheets))
	for _, sheet := range sheets {
		resp = append(resp, toResponse(sheet))
	}
	return resp, nil
}

// AdjustTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) AdjustTimesheet(ctx context.Context, id string, req timesheet.AdjustTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	sheet, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if err := s.TimesheetRepository.SetAdjustments(ctx, id, req.Bonus, req.Fine); err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to set adjustments: %w", err)
	}

	if req.Bonus != nil {
		sheet.Bonus, _ = decimal.NewFromString(*req.Bonus)
	}
	if req.Fine != nil {
		sheet.Fine, _ = decimal.NewFromString(*req.Fine)
	}
	return toResponse(sheet), nil
}

// DeleteTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeleteTimesheet(ctx context.Context, id string) error {
	if _, err := s.TimesheetRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.TimesheetRepository.Delete(ctx, id)
}

func toResponse(sheet timesheet.Timesheet) timesheet.TimesheetResponse {
	resp := timesheet.TimesheetResponse{
		ID:             sheet.ID,
		EmployeeID:     sheet.EmployeeID,
		WorkScheduleID: sheet.WorkScheduleID,
		Day:            sheet.Day.Format("2006-01-02"),
		CheckIn:        sheet.CheckIn,
		CheckOut:       sheet.CheckOut,
		Status:         string(sheet.Status),
		Bonus:          sheet.Bonus.String(),
		Fine:           sheet.Fine.String(),
		WorkedHours:    sheet.WorkedHours().StringFixed(2),
	}
	if sheet.EmployeeName != nil {
		resp.EmployeeName = *sheet.EmployeeName
	}
	if sheet.WorkScheduleName != nil {
		resp.WorkScheduleName = *sheet.WorkScheduleName
	}
	return resp
}
