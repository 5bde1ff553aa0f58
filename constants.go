package membuf

import (
	"github.com/hupe1980/membuf/internal/align"
	"github.com/hupe1980/membuf/internal/platform"
)

// Null is the literal whose UTF-8 encoding NullBytes returns.
const Null = "null"

// NullBytes returns the UTF-8 bytes of "null". Each call returns a fresh
// slice, so callers may modify it.
func NullBytes() []byte {
	return []byte(Null)
}

// ByteOrder identifies the order of bytes in multi-byte values.
type ByteOrder = platform.ByteOrder

const (
	// LittleEndian stores the least significant byte first.
	LittleEndian = platform.LittleEndian
	// BigEndian stores the most significant byte first.
	BigEndian = platform.BigEndian
)

// ArrayBaseOffset is the byte offset from the start of a Go byte array to
// its first element. It is zero: Go arrays carry no object header.
const ArrayBaseOffset = platform.ArrayBaseOffset

// CacheLineSize is the cache-line size of the target architecture.
const CacheLineSize = platform.CacheLineSize

// NativeByteOrder returns the byte order of the host. It is resolved once
// per process.
func NativeByteOrder() ByteOrder {
	return platform.NativeByteOrder()
}

// PageSize returns the virtual memory page size of the host.
func PageSize() int {
	return platform.PageSize()
}

// PlatformInfo describes the host platform.
func PlatformInfo() string {
	return platform.Info()
}

// Integer is the set of integer types IsPowerOfTwo accepts.
type Integer = align.Integer

// IsPowerOfTwo reports whether v is 1, 2, 4, 8, ...
func IsPowerOfTwo[T Integer](v T) bool {
	return align.IsPowerOfTwo(v)
}
