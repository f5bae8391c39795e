package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrSizeMismatch      = errors.New("total size of new array must be unchanged")
	ErrNotRepresentable  = errors.New("incompatible shape for in-place modification, use Reshape to make a copy")
	ErrIncompatibleShape = errors.New("shapes not compatible")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrAxisOutOfRange    = errors.New("axis out of range")
)

// ShapeError records the operation and shapes involved in a failed shape change.
type ShapeError struct {
	Op   string // Operation name (e.g., "reshape", "set_shape")
	From Shape  // Shape before the operation
	To   Shape  // Requested shape
	Err  error  // One of the sentinel errors above
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v -> %v: %v", e.Op, e.From, e.To, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ShapeError) Unwrap() error {
	return e.Err
}
