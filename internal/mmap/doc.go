// Package mmap provides anonymous off-heap memory mappings.
//
// # Overview
//
// MapAnon obtains read-write memory outside the Go garbage collector. The
// mapping has a stable address for its whole lifetime and must be released
// with Close exactly once; further calls to Close are no-ops.
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	region, _ := m.Region(offset, size)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//   - Other targets: a Go heap slice (no stable address guarantee beyond the GC's)
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine touches Bytes() after Close() returns.
package mmap
