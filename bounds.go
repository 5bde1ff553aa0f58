package membuf

import "github.com/hupe1980/membuf/internal/bounds"

// CheckBounds returns a *BoundsError when index < 0 or index+length > capacity.
//
// The sum is never formed in a way that can overflow, so an index near
// math.MaxInt64 together with a large length is reported rather than
// wrapped around.
func CheckBounds(capacity, index int64, length int32) error {
	return bounds.Check(capacity, index, length)
}

// CheckSliceBounds checks an access window against a managed byte slice.
func CheckSliceBounds(b []byte, index int64, length int32) error {
	return bounds.Check(int64(len(b)), index, length)
}

// Check checks an access window against any Sized buffer.
func Check[B Sized](b B, index int64, length int32) error {
	return bounds.Check(b.Capacity(), index, length)
}
