package formclient

import (
	"fmt"
	"strings"
)

// ValidationError lists every violated constraint found before a payload
// is built. It is never sent to the network.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NotAuthenticatedError means the session has no credential. Every call
// fails locally with this before any request is attempted.
type NotAuthenticatedError struct{}

func (e *NotAuthenticatedError) Error() string {
	return "not authenticated"
}

// NotFoundError means the edit target does not exist or is not owned by
// the current session.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("delivery status %d not found", e.ID)
}

// ApiError carries the server's reported message verbatim.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return e.Message
}

// NetworkError wraps a transport failure, including request timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
