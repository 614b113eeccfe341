package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrInvalidPosition       = errors.New("position is not recognized")
	ErrCannotDeleteSelf      = errors.New("cannot delete your own employee record")
	ErrUnauthorized          = errors.New("unauthorized to access this employee")
	ErrInvalidPhoneNumber    = errors.New("phone number must be 9-13 digits")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrAdminAccessRequired   = errors.New("admin access required")
)
