package schedule

import "errors"

var (
	ErrWorkScheduleNotFound = errors.New("work schedule not found")
	ErrWorkScheduleInUse    = errors.New("work schedule is referenced by existing shifts")
	ErrNameExists           = errors.New("work schedule name already exists")
)
