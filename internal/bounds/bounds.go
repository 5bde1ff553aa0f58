package bounds

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every *Error via errors.Is.
var ErrOutOfBounds = errors.New("membuf: out of bounds")

// Error reports an access window that does not fit inside a capacity.
type Error struct {
	Index    int64
	Length   int32
	Capacity int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("membuf: index=%d, length=%d, capacity=%d", e.Index, e.Length, e.Capacity)
}

// Is reports whether target is ErrOutOfBounds.
func (e *Error) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Check returns an *Error when index is negative or index+length exceeds capacity.
func Check(capacity, index int64, length int32) error {
	if index < 0 || !fits(capacity, index, int64(length)) {
		return &Error{Index: index, Length: length, Capacity: capacity}
	}
	return nil
}

// fits requires index >= 0. Neither branch can overflow: capacity-index is
// taken only when capacity >= index >= 0, and index+length only when length
// is a negative int32.
func fits(capacity, index, length int64) bool {
	if length < 0 {
		return index+length <= capacity
	}
	return capacity >= index && length <= capacity-index
}

// End returns index+length when the window fits inside capacity.
func End(capacity, index int64, length int32) (int64, error) {
	if err := Check(capacity, index, length); err != nil {
		return 0, err
	}
	return index + int64(length), nil
}
