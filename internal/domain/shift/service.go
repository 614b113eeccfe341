package shift

import "context"

type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	ListShifts(ctx context.Context, filter ShiftFilter) ([]DayShiftsResponse, error)
	GetRoster(ctx context.Context, filter ShiftFilter) ([]RosterRow, error)
	UpdateShiftEmployees(ctx context.Context, req UpdateShiftEmployeesRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error
	DeleteWorkScheduleShifts(ctx context.Context, day string, workScheduleID string) error
}
