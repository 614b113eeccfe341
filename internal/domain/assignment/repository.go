package assignment

import (
	"context"
	"time"
)

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]Assignment, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	// HasPendingRequest guards against the same employee requesting the
	// same day and work schedule twice.
	HasPendingRequest(ctx context.Context, employeeID string, day time.Time, workScheduleID string) (bool, error)
}
