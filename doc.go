// Package membuf provides low-level memory-buffer primitives for libraries
// that manipulate raw byte storage directly.
//
// # Bounds Checking
//
// CheckBounds validates an access window before a read or write. The check
// is overflow-safe for any int64 index and int32 length:
//
//	if err := membuf.CheckSliceBounds(buf, idx, 8); err != nil {
//	    return err // *membuf.BoundsError
//	}
//
// # Aligned Native Allocation
//
// AllocateAligned returns a *NativeBuffer whose start address is a multiple
// of a power-of-two alignment. The memory lives outside the Go heap and
// must be released with Free exactly once:
//
//	buf, err := membuf.AllocateAligned(4096, 64)
//	if err != nil { ... }
//	defer buf.Free()
//
//	addr := membuf.NativeAddress(buf) // addr%64 == 0
//
// Only *NativeBuffer has an address accessor. Managed storage (HeapBuffer,
// plain []byte) is bounds-checked through the same algorithm but never
// exposes an address.
//
// # Configuration
//
// NewAllocator accepts options for a memory budget, a custom NativeSource,
// structured logging and metrics:
//
//	a := membuf.NewAllocator(
//	    membuf.WithMemoryLimit(64 << 20),
//	    membuf.WithLogger(membuf.NewTextLogger(slog.LevelDebug)),
//	    membuf.WithMetrics(&membuf.BasicMetricsCollector{}),
//	)
//
// # Platform Facts
//
// NullBytes, NativeByteOrder, ArrayBaseOffset, CacheLineSize and PageSize
// are fixed for the life of the process.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Free may be called from
// several goroutines; exactly one call releases the block.
package membuf
