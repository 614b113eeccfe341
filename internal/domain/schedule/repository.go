package schedule

import "context"

type WorkScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	List(ctx context.Context) ([]WorkSchedule, error)
	Update(ctx context.Context, req UpdateWorkScheduleRequest) (WorkSchedule, error)
	Delete(ctx context.Context, id string) error
}
