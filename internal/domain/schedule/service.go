package schedule

import "context"

type WorkScheduleService interface {
	CreateWorkSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	ListWorkSchedules(ctx context.Context) ([]WorkScheduleResponse, error)
	UpdateWorkSchedule(ctx context.Context, req UpdateWorkScheduleRequest) (WorkScheduleResponse, error)
	DeleteWorkSchedule(ctx context.Context, id string) error
}
