//go:build !unix && !windows

package mmap

// osMapAnon falls back to the Go heap where no anonymous mapping exists.
// The collector does not move heap objects, so the address stays stable
// while the Mapping holds the slice.
func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return make([]byte, size), func([]byte) error { return nil }, nil
}
