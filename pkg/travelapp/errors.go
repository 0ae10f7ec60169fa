package travelapp

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user left a screen without finishing it
// (closed the window, or pressed back where there is nothing to go back to).
// This is normal flow control, not a failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InfrastructureError reports a failure of the UI plumbing itself: SDL,
// fonts, images or input devices.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_image")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("travelapp: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("travelapp: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
