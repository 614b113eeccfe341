package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
)

type stubEmployeeRepo struct {
	counts map[string]int64
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubEmployeeRepo) ListWithPosition(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) CountByPosition(ctx context.Context) (map[string]int64, error) {
	return s.counts, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestGetStatisticsZeroFillsPositions(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{counts: map[string]int64{
		"Barista": 3,
		"Cashier": 2,
	}})

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.Total)
	require.Len(t, stats.Positions, len(employee.PositionValues))

	byPosition := make(map[string]int64, len(stats.Positions))
	for i, pc := range stats.Positions {
		assert.Equal(t, employee.PositionValues[i], pc.Position)
		byPosition[pc.Position] = pc.Count
	}
	assert.Equal(t, int64(3), byPosition["Barista"])
	assert.Equal(t, int64(2), byPosition["Cashier"])
	assert.Equal(t, int64(0), byPosition["Admin"])
	assert.Equal(t, int64(0), byPosition["Manager"])
	assert.Equal(t, int64(0), byPosition["Server"])
}

func TestGetStatisticsEmptyRoster(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{counts: map[string]int64{}})

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Total)
	require.Len(t, stats.Positions, len(employee.PositionValues))
	for _, pc := range stats.Positions {
		assert.Zero(t, pc.Count)
	}
}
