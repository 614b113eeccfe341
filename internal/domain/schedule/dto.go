package schedule

import (
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/validator"
)

type CreateWorkScheduleRequest struct {
	Name      string `json:"name"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidClock(r.TimeStart) {
		errs = append(errs, validator.ValidationError{Field: "time_start", Message: "must be zero-padded HH:mm"})
	}
	if !validator.IsValidClock(r.TimeEnd) {
		errs = append(errs, validator.ValidationError{Field: "time_end", Message: "must be zero-padded HH:mm"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkScheduleRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	TimeStart *string `json:"time_start,omitempty"`
	TimeEnd   *string `json:"time_end,omitempty"`
}

func (r *UpdateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.TimeStart != nil && !validator.IsValidClock(*r.TimeStart) {
		errs = append(errs, validator.ValidationError{Field: "time_start", Message: "must be zero-padded HH:mm"})
	}
	if r.TimeEnd != nil && !validator.IsValidClock(*r.TimeEnd) {
		errs = append(errs, validator.ValidationError{Field: "time_end", Message: "must be zero-padded HH:mm"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkScheduleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}
