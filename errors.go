package membuf

import (
	"errors"
	"fmt"

	"github.com/hupe1980/membuf/internal/bounds"
)

var (
	// ErrOutOfBounds matches every *BoundsError via errors.Is.
	ErrOutOfBounds = bounds.ErrOutOfBounds
	// ErrInvalidAlignment is returned when an alignment is not a power of two.
	ErrInvalidAlignment = errors.New("membuf: alignment must be a power of two")
	// ErrInvalidCapacity is returned for a negative capacity.
	ErrInvalidCapacity = errors.New("membuf: capacity must not be negative")
	// ErrOutOfMemory is returned when native memory could not be obtained.
	ErrOutOfMemory = errors.New("membuf: out of memory")
	// ErrReleased is returned when accessing a buffer after Free.
	ErrReleased = errors.New("membuf: buffer released")
)

// BoundsError reports an access window outside a buffer's capacity.
// It carries the offending index, length and capacity.
type BoundsError = bounds.Error

// AllocError reports a failed aligned allocation.
//
// Err is one of ErrInvalidAlignment, ErrInvalidCapacity or an error wrapping
// ErrOutOfMemory; test it with errors.Is.
type AllocError struct {
	Capacity  int
	Alignment int
	Err       error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("%v: capacity=%d, alignment=%d", e.Err, e.Capacity, e.Alignment)
}

func (e *AllocError) Unwrap() error { return e.Err }

func outOfMemory(cause error) error {
	return fmt.Errorf("%w: %w", ErrOutOfMemory, cause)
}
