package membuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocError(t *testing.T) {
	err := error(&AllocError{Capacity: 64, Alignment: 7, Err: ErrInvalidAlignment})

	assert.ErrorIs(t, err, ErrInvalidAlignment)
	assert.NotErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, "membuf: alignment must be a power of two: capacity=64, alignment=7", err.Error())

	var ae *AllocError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 64, ae.Capacity)
	assert.Equal(t, 7, ae.Alignment)
}

func TestOutOfMemory_WrapsCause(t *testing.T) {
	cause := errors.New("mmap failed")
	err := &AllocError{Capacity: 1, Alignment: 1, Err: outOfMemory(cause)}

	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.ErrorIs(t, err, cause)
}

func TestBoundsError_Is(t *testing.T) {
	err := error(&BoundsError{Index: 8, Length: 3, Capacity: 10})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.NotErrorIs(t, err, ErrReleased)
}
