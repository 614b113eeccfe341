package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	emp := employee.Employee{
		ID:           id.String(),
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		Position:     employee.Position(req.Position),
		HourlyWage:   req.HourlyWage,
		PasswordHash: string(hash),
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	emps, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  make([]employee.EmployeeResponse, 0, len(emps)),
	}
	for _, emp := range emps {
		resp.Employees = append(resp.Employees, toResponse(emp))
	}
	return resp, nil
}

// ListEmployeesWithPosition implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployeesWithPosition(ctx context.Context) ([]employee.EmployeeWithPositionResponse, error) {
	emps, err := s.EmployeeRepository.ListWithPosition(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with position: %w", err)
	}

	resp := make([]employee.EmployeeWithPositionResponse, 0, len(emps))
	for _, emp := range emps {
		resp = append(resp, employee.EmployeeWithPositionResponse{
			ID:       emp.ID,
			FullName: emp.FullName,
			Position: string(emp.Position),
		})
	}
	return resp, nil
}

// GetStatistics implements employee.EmployeeService. Every known position
// appears in the breakdown, zero when unstaffed, in the fixed enum order.
func (s *EmployeeServiceImpl) GetStatistics(ctx context.Context) (employee.StatisticsResponse, error) {
	counts, err := s.EmployeeRepository.CountByPosition(ctx)
	if err != nil {
		return employee.StatisticsResponse{}, fmt.Errorf("failed to count employees by position: %w", err)
	}

	resp := employee.StatisticsResponse{
		Positions: make([]employee.PositionCount, 0, len(employee.PositionValues)),
	}
	for _, position := range employee.PositionValues {
		resp.Positions = append(resp.Positions, employee.PositionCount{
			Position: position,
			Count:    counts[position],
		})
	}
	for _, count := range counts {
		resp.Total += count
	}
	return resp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Position != nil {
		emp.Position = employee.Position(*req.Position)
	}
	if req.HourlyWage != nil {
		emp.HourlyWage = *req.HourlyWage
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	emp.UpdatedAt = time.Now()
	return toResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService. An admin cannot
// delete their own account.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if actorID, _ := claims["employee_id"].(string); actorID == id {
		return employee.ErrCannotDeleteSelf
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.EmployeeRepository.Delete(ctx, id)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		FullName:    emp.FullName,
		Email:       emp.Email,
		PhoneNumber: emp.PhoneNumber,
		Address:     emp.Address,
		Position:    string(emp.Position),
		HourlyWage:  emp.HourlyWage,
		CreatedAt:   emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   emp.UpdatedAt.Format(time.RFC3339),
	}
}
