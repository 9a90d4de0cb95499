package store

import (
	"fmt"
	"net/http"
)

// Error is a store error with an HTTP status code, so the API layer can
// map misses to responses without inspecting Badger internals.
type Error struct {
	Code    int    // HTTP status code
	Message string // User-facing message
	Err     error  // Underlying error (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int { return e.Code }

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Sentinel errors.
var (
	// ErrNotFound is returned when no record exists for an identifier.
	ErrNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "journal not found",
	}

	// ErrNotBuilt is returned when the store holds no registry manifest,
	// i.e. the offline build step has not run against this path.
	ErrNotBuilt = &Error{
		Code:    http.StatusServiceUnavailable,
		Message: "registry artifact not built",
	}
)
