package membuf

import "github.com/hupe1980/membuf/internal/mmap"

// NativeBlock is a block of memory outside the Go heap.
type NativeBlock interface {
	// Bytes returns the whole block. Its address must stay stable until Close.
	Bytes() []byte
	// Close releases the block.
	Close() error
}

// NativeSource obtains native blocks.
//
// Implementations must be safe for concurrent use.
type NativeSource interface {
	Map(size int) (NativeBlock, error)
}

// MmapSource maps anonymous off-heap memory from the operating system.
type MmapSource struct{}

// Map implements NativeSource.
func (MmapSource) Map(size int) (NativeBlock, error) {
	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, err
	}
	return m, nil
}
