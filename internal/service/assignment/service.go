package assignment

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/assignment"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/schedule"
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/shift"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
	"github.com/brewhub-app/brewhub-backend-go/internal/repository/postgresql"
)

type AssignmentServiceImpl struct {
	db *database.DB
	assignment.AssignmentRepository
	shift.ShiftRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
}

func NewAssignmentService(
	db *database.DB,
	assignmentRepo assignment.AssignmentRepository,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		db:                     db,
		AssignmentRepository:   assignmentRepo,
		ShiftRepository:        shiftRepo,
		EmployeeRepository:     employeeRepo,
		WorkScheduleRepository: scheduleRepo,
	}
}

// CreateAssignment implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}
	day, _ := validator.IsValidDate(req.Day)

	if req.EmployeeID == "" {
		_, claims, err := jwtauth.FromContext(ctx)
		if err != nil {
			return assignment.AssignmentResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
		}
		req.EmployeeID, _ = claims["employee_id"].(string)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if !shift.RoleAllowed(emp.Position, shift.Role(req.Role)) {
		return assignment.AssignmentResponse{}, shift.ErrRoleNotAllowed
	}

	if _, err := s.WorkScheduleRepository.GetByID(ctx, req.WorkScheduleID); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	pending, err := s.AssignmentRepository.HasPendingRequest(ctx, req.EmployeeID, day, req.WorkScheduleID)
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if pending {
		return assignment.AssignmentResponse{}, assignment.ErrAlreadyRequested
	}

	id, err := uuid.NewV7()
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to generate assignment id: %w", err)
	}

	created, err := s.AssignmentRepository.Create(ctx, assignment.Assignment{
		ID:             id.String(),
		EmployeeID:     req.EmployeeID,
		Day:            day,
		WorkScheduleID: req.WorkScheduleID,
		Role:           req.Role,
		Status:         assignment.StatusPending,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return toResponse(created), nil
}

// ListAssignments implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) ListAssignments(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.AssignmentResponse, error) {
	list, err := s.AssignmentRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	resp := make([]assignment.AssignmentResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toResponse(a))
	}
	return resp, nil
}

// ApproveAssignment implements assignment.AssignmentService. The merge
// into the day's shift record and the status flip happen in one
// transaction: a failure on either side leaves both untouched.
func (s *AssignmentServiceImpl) ApproveAssignment(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	a, err := s.AssignmentRepository.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if a.Status != assignment.StatusPending {
		return assignment.AssignmentResponse{}, assignment.ErrAssignmentAlreadyProcessed
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.ShiftRepository.GetByDayAndSchedule(txCtx, a.Day, a.WorkScheduleID)
		if err != nil {
			return fmt.Errorf("failed to get shift for day and schedule: %w", err)
		}

		entry := shift.ShiftEntry{
			EmployeeID:  a.EmployeeID,
			RoleInShift: shift.Role(a.Role),
		}
		if rec == nil {
			shiftID, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate shift id: %w", err)
			}
			if _, err := s.ShiftRepository.Create(txCtx, shift.ShiftRecord{
				ID:             shiftID.String(),
				Day:            a.Day,
				WorkScheduleID: a.WorkScheduleID,
				Entries:        []shift.ShiftEntry{entry},
			}); err != nil {
				return fmt.Errorf("failed to create shift from assignment: %w", err)
			}
		} else {
			if err := s.ShiftRepository.AddEntries(txCtx, rec.ID, []shift.ShiftEntry{entry}); err != nil {
				return fmt.Errorf("failed to add assignment entry to shift: %w", err)
			}
		}

		if err := s.AssignmentRepository.UpdateStatus(txCtx, a.ID, assignment.StatusApproved); err != nil {
			return fmt.Errorf("failed to mark assignment approved: %w", err)
		}
		return nil
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	a.Status = assignment.StatusApproved
	return toResponse(a), nil
}

// CancelAssignment implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) CancelAssignment(ctx context.Context, id string) error {
	a, err := s.AssignmentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.Status != assignment.StatusPending {
		return assignment.ErrAssignmentAlreadyProcessed
	}
	return s.AssignmentRepository.Delete(ctx, id)
}

func toResponse(a assignment.Assignment) assignment.AssignmentResponse {
	resp := assignment.AssignmentResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		Day:            a.Day.Format("2006-01-02"),
		WorkScheduleID: a.WorkScheduleID,
		Role:           a.Role,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.WorkScheduleName != nil {
		resp.WorkScheduleName = *a.WorkScheduleName
	}
	if a.TimeStart != nil {
		resp.TimeStart = *a.TimeStart
	}
	if a.TimeEnd != nil {
		resp.TimeEnd = *a.TimeEnd
	}
	return resp
}
