package assignment

import "context"

type AssignmentService interface {
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, filter AssignmentFilter) ([]AssignmentResponse, error)

	// ApproveAssignment merges the request into the day's shift record and
	// marks the assignment approved in one transaction.
	ApproveAssignment(ctx context.Context, id string) (AssignmentResponse, error)

	CancelAssignment(ctx context.Context, id string) error
}
