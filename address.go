package membuf

import "unsafe"

// NativeAddress returns the address at which the buffer's aligned storage
// begins. It returns 0 for a nil or released buffer. The value is only
// meaningful until the buffer is freed.
func NativeAddress(b *NativeBuffer) uint64 {
	if b == nil || b.released.Load() {
		return 0
	}
	return uint64(b.base) + uint64(b.padding) //nolint:gosec // padding < alignment
}

// addressOf returns the address of the first byte of b. b must not be empty.
func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b))) //nolint:gosec // unsafe is required for address arithmetic
}
