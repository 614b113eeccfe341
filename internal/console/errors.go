package console

import "fmt"

// The client distinguishes three failure kinds so callers can decide
// whether to fix input, show the backend's message, or retry later.

// ValidationError means the input was rejected before or by the backend's
// validation layer; the field map carries per-field messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// BackendRejection means the backend understood the request and said no.
// The message is the backend's, verbatim.
type BackendRejection struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *BackendRejection) Error() string {
	return fmt.Sprintf("backend rejected request (%d %s): %s", e.StatusCode, e.Code, e.Message)
}

// TransportFailure means the request never completed: connection refused,
// timeout, or an unreadable response.
type TransportFailure struct {
	Err error
}

func (e *TransportFailure) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}
