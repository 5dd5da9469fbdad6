package hellobutton

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// InfrastructureError represents a backend-level failure (SDL init failed,
// window or renderer could not be created, font missing, driver registration
// rejected). These are fatal at startup: the process logs them and exits.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init_sdl", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hellobutton: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("hellobutton: %s", e.Op)
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
