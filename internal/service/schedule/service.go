package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/schedule"
)

type WorkScheduleServiceImpl struct {
	schedule.WorkScheduleRepository
}

func NewWorkScheduleService(scheduleRepo schedule.WorkScheduleRepository) schedule.WorkScheduleService {
	return &WorkScheduleServiceImpl{
		WorkScheduleRepository: scheduleRepo,
	}
}

// CreateWorkSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to generate work schedule id: %w", err)
	}

	ws, err := s.WorkScheduleRepository.Create(ctx, schedule.WorkSchedule{
		ID:        id.String(),
		Name:      req.Name,
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return toResponse(ws), nil
}

// ListWorkSchedules implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) ListWorkSchedules(ctx context.Context) ([]schedule.WorkScheduleResponse, error) {
	schedules, err := s.WorkScheduleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}

	resp := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		resp = append(resp, toResponse(ws))
	}
	return resp, nil
}

// UpdateWorkSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) UpdateWorkSchedule(ctx context.Context, req schedule.UpdateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ws, err := s.WorkScheduleRepository.Update(ctx, req)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return toResponse(ws), nil
}

// DeleteWorkSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) DeleteWorkSchedule(ctx context.Context, id string) error {
	if _, err := s.WorkScheduleRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.WorkScheduleRepository.Delete(ctx, id)
}

func toResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	return schedule.WorkScheduleResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		TimeStart: ws.TimeStart,
		TimeEnd:   ws.TimeEnd,
	}
}
