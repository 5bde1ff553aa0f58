package membuf

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAllocate is called after each aligned allocation attempt.
	// padding is the number of bytes skipped to reach the alignment boundary,
	// err is nil if successful.
	RecordAllocate(capacity, padding int, duration time.Duration, err error)

	// RecordFree is called once per released native block.
	// size is the full size of the block including alignment slack.
	RecordFree(size int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFree(int, error)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	AllocCount      atomic.Int64
	AllocErrors     atomic.Int64
	AllocTotalNanos atomic.Int64
	BytesRequested  atomic.Int64
	PaddingBytes    atomic.Int64
	FreeCount       atomic.Int64
	FreeErrors      atomic.Int64
	BytesFreed      atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(capacity, padding int, duration time.Duration, err error) {
	b.AllocCount.Add(1)
	b.AllocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.BytesRequested.Add(int64(capacity))
	b.PaddingBytes.Add(int64(padding))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(size int, err error) {
	b.FreeCount.Add(1)
	if err != nil {
		b.FreeErrors.Add(1)
	}
	b.BytesFreed.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:     b.AllocCount.Load(),
		AllocErrors:    b.AllocErrors.Load(),
		AllocAvgNanos:  b.getAvgAllocNanos(),
		BytesRequested: b.BytesRequested.Load(),
		PaddingBytes:   b.PaddingBytes.Load(),
		FreeCount:      b.FreeCount.Load(),
		FreeErrors:     b.FreeErrors.Load(),
		BytesFreed:     b.BytesFreed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAllocNanos() int64 {
	count := b.AllocCount.Load()
	if count == 0 {
		return 0
	}
	return b.AllocTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount     int64
	AllocErrors    int64
	AllocAvgNanos  int64
	BytesRequested int64
	PaddingBytes   int64
	FreeCount      int64
	FreeErrors     int64
	BytesFreed     int64
}
