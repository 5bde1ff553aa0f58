package membuf

import (
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/membuf/internal/align"
	"github.com/hupe1980/membuf/internal/platform"
	"github.com/hupe1980/membuf/internal/resource"
)

// Allocator hands out aligned native buffers.
//
// An Allocator is safe for concurrent use. The zero value is not usable;
// call NewAllocator.
type Allocator struct {
	source  NativeSource
	logger  *Logger
	metrics MetricsCollector
	rc      *resource.Controller
}

// NewAllocator creates an Allocator.
func NewAllocator(opts ...Option) *Allocator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Allocator{
		source:  o.source,
		logger:  o.logger,
		metrics: o.metricsCollector,
		rc:      o.controller(),
	}
}

var defaultAllocator = NewAllocator()

// AllocateAligned allocates capacity bytes of native memory whose start
// address is a multiple of alignment, using the default allocator.
func AllocateAligned(capacity, alignment int) (*NativeBuffer, error) {
	return defaultAllocator.AllocateAligned(capacity, alignment)
}

// AllocateCacheAligned aligns to CacheLineSize using the default allocator.
func AllocateCacheAligned(capacity int) (*NativeBuffer, error) {
	return defaultAllocator.AllocateCacheAligned(capacity)
}

// AllocatePageAligned aligns to PageSize() using the default allocator.
func AllocatePageAligned(capacity int) (*NativeBuffer, error) {
	return defaultAllocator.AllocatePageAligned(capacity)
}

// AllocateAligned allocates capacity bytes of native memory whose start
// address is a multiple of alignment.
//
// alignment must be a power of two; otherwise ErrInvalidAlignment is
// returned before any memory is touched. The block behind the buffer is
// capacity+alignment bytes; the caller owns it and must call Free once.
func (a *Allocator) AllocateAligned(capacity, alignment int) (*NativeBuffer, error) {
	start := time.Now()

	buf, err := a.allocateAligned(capacity, alignment)
	if err != nil {
		err = &AllocError{Capacity: capacity, Alignment: alignment, Err: err}
		a.metrics.RecordAllocate(capacity, 0, time.Since(start), err)
		a.logger.LogAllocate(capacity, alignment, 0, 0, err)
		return nil, err
	}

	a.metrics.RecordAllocate(capacity, buf.padding, time.Since(start), nil)
	a.logger.LogAllocate(capacity, alignment, buf.padding, NativeAddress(buf), nil)
	return buf, nil
}

// AllocateCacheAligned allocates capacity bytes aligned to CacheLineSize.
func (a *Allocator) AllocateCacheAligned(capacity int) (*NativeBuffer, error) {
	return a.AllocateAligned(capacity, CacheLineSize)
}

// AllocatePageAligned allocates capacity bytes aligned to PageSize().
func (a *Allocator) AllocatePageAligned(capacity int) (*NativeBuffer, error) {
	return a.AllocateAligned(capacity, platform.PageSize())
}

func (a *Allocator) allocateAligned(capacity, alignment int) (*NativeBuffer, error) {
	if !align.IsPowerOfTwo(alignment) {
		return nil, ErrInvalidAlignment
	}
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if capacity > math.MaxInt-alignment {
		return nil, outOfMemory(fmt.Errorf("block size overflows int"))
	}

	// Over-allocating by a full alignment leaves room for any padding in
	// [0, alignment) whatever the base address turns out to be.
	size := capacity + alignment
	if err := a.rc.AcquireMemory(int64(size)); err != nil {
		return nil, outOfMemory(err)
	}

	block, err := a.source.Map(size)
	if err != nil {
		a.rc.ReleaseMemory(int64(size))
		return nil, outOfMemory(err)
	}

	data := block.Bytes()
	if len(data) < size {
		_ = block.Close()
		a.rc.ReleaseMemory(int64(size))
		return nil, outOfMemory(fmt.Errorf("source returned %d bytes, want %d", len(data), size))
	}

	base := addressOf(data)
	padding := int(align.Padding(base, uintptr(alignment))) //nolint:gosec // padding < alignment
	end := padding + capacity

	return &NativeBuffer{
		owner:     a,
		block:     block,
		data:      data[padding:end:end],
		blockSize: size,
		padding:   padding,
		alignment: alignment,
		base:      base,
	}, nil
}

func (a *Allocator) release(b *NativeBuffer, err error) {
	if a == nil {
		return
	}
	a.rc.ReleaseMemory(int64(b.blockSize))
	a.metrics.RecordFree(b.blockSize, err)
	a.logger.LogFree(b.blockSize, err)
}

// MemoryUsage returns the native bytes currently held by live buffers,
// alignment slack included.
func (a *Allocator) MemoryUsage() int64 {
	return a.rc.MemoryUsage()
}

// PeakMemoryUsage returns the highest MemoryUsage observed.
func (a *Allocator) PeakMemoryUsage() int64 {
	return a.rc.PeakMemoryUsage()
}

// MemoryLimit returns the configured cap, or 0 when unlimited.
func (a *Allocator) MemoryLimit() int64 {
	return a.rc.MemoryLimit()
}

// AllocateHeapAligned allocates capacity bytes on the Go heap whose start
// address is a multiple of alignment. The Go collector does not move heap
// objects, so the alignment holds for the slice's lifetime.
func AllocateHeapAligned(capacity, alignment int) (HeapBuffer, error) {
	if !align.IsPowerOfTwo(alignment) {
		return nil, &AllocError{Capacity: capacity, Alignment: alignment, Err: ErrInvalidAlignment}
	}
	if capacity < 0 {
		return nil, &AllocError{Capacity: capacity, Alignment: alignment, Err: ErrInvalidCapacity}
	}
	if capacity > math.MaxInt-alignment {
		return nil, &AllocError{Capacity: capacity, Alignment: alignment, Err: outOfMemory(fmt.Errorf("block size overflows int"))}
	}

	buf := make([]byte, capacity+alignment)
	padding := int(align.Padding(addressOf(buf), uintptr(alignment))) //nolint:gosec // padding < alignment
	end := padding + capacity
	return buf[padding:end:end], nil
}
