package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is the permanent position of an employee, distinct from the
// role they perform inside a specific shift.
type Position string

const (
	PositionAdmin   Position = "Admin"
	PositionManager Position = "Manager"
	PositionCashier Position = "Cashier"
	PositionBarista Position = "Barista"
	PositionServer  Position = "Server"
)

var PositionValues = []string{
	string(PositionAdmin),
	string(PositionManager),
	string(PositionCashier),
	string(PositionBarista),
	string(PositionServer),
}

type Employee struct {
	ID           string
	FullName     string
	Email        string
	PhoneNumber  *string
	Address      *string
	Position     Position
	HourlyWage   decimal.Decimal
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
