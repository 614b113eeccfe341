package assignment

import "errors"

var (
	ErrAssignmentNotFound         = errors.New("assignment not found")
	ErrAssignmentAlreadyProcessed = errors.New("assignment has already been approved or cancelled")
	ErrAlreadyRequested           = errors.New("you already requested this day and work schedule")
)
