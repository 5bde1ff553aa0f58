// Package align provides power-of-two predicates and padding arithmetic.
//
// Nothing here touches memory; addresses are plain integers.
package align

// Integer is the set of integer types accepted by the helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IsPowerOfTwo reports whether v is 1, 2, 4, 8, ...
func IsPowerOfTwo[T Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// Padding returns the number of bytes to add to addr to reach the next
// multiple of alignment. It is 0 when addr is already aligned.
// alignment must be a power of two.
func Padding(addr, alignment uintptr) uintptr {
	mask := alignment - 1
	return (alignment - (addr & mask)) & mask
}
