package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListWithPosition(ctx context.Context) ([]Employee, error)

	// CountByPosition returns the number of employees per position.
	// Positions with no employees are absent from the map.
	CountByPosition(ctx context.Context) (map[string]int64, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}
