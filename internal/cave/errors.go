package cave

import (
	"errors"
	"fmt"
)

// Validation error codes.
const (
	CodeInvalidDimensions = "INVALID_DIMENSIONS"
	CodeInvalidFill       = "INVALID_FILL"
	CodeInvalidSmooth     = "INVALID_SMOOTH"
	CodeInvalidThreshold  = "INVALID_THRESHOLD"
	CodeInvalidRadius     = "INVALID_RADIUS"
	CodeInvalidRepair     = "INVALID_REPAIR"
)

// ValidationError contains details about a rejected configuration.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ErrNotConverged is returned when hole repair does not reach a fixed point
// within the configured number of passes.
var ErrNotConverged = errors.New("cave: wall repair did not converge")

// ConvergenceError reports how far hole repair got before giving up.
type ConvergenceError struct {
	Passes  int // Passes executed
	Defects int // Defects found by the last pass
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v after %d passes (%d holes remaining)", ErrNotConverged, e.Passes, e.Defects)
}

// Unwrap lets errors.Is match ErrNotConverged.
func (e *ConvergenceError) Unwrap() error {
	return ErrNotConverged
}
