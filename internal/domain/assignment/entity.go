package assignment

import "time"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusCancelled Status = "Cancelled"
)

// Assignment is an employee-initiated request to work one work schedule on
// one day in a given role, pending manager approval. Approved and
// Cancelled are terminal.
type Assignment struct {
	ID             string
	EmployeeID     string
	Day            time.Time
	WorkScheduleID string
	Role           string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName     *string
	EmployeePosition *string
	WorkScheduleName *string
	TimeStart        *string
	TimeEnd          *string
}
