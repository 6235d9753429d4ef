package apperrors

import (
	"fmt"
	"net/http"
)

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       any
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id any) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for when TVMaze does not know a show ID.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUpstreamStatus is returned when TVMaze answers with an unexpected HTTP status.
type ErrUpstreamStatus struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("upstream returned status %d (%s) for %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstreamStatus) Is(target error) bool {
	_, ok := target.(*ErrUpstreamStatus)
	return ok
}

// ErrDecode is returned when an upstream body does not have the expected JSON shape.
type ErrDecode struct {
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *ErrDecode) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Resource, e.Err)
}

// Unwrap exposes the underlying decoding error.
func (e *ErrDecode) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrDecode) Is(target error) bool {
	_, ok := target.(*ErrDecode)
	return ok
}

// ErrInvalidShowID is returned when a show ID taken from a request is not a positive integer.
type ErrInvalidShowID struct {
	Raw string
}

// Error implements the error interface.
func (e *ErrInvalidShowID) Error() string {
	return fmt.Sprintf("invalid show ID %q", e.Raw)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidShowID) Is(target error) bool {
	_, ok := target.(*ErrInvalidShowID)
	return ok
}
