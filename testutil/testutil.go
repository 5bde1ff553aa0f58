package testutil

import (
	"errors"
	"sync/atomic"

	"github.com/hupe1980/membuf"
	"github.com/hupe1980/membuf/internal/mmap"
)

// ErrInjected is the default error returned by FailingSource.
var ErrInjected = errors.New("testutil: injected allocation failure")

// CountingSource wraps a NativeSource and counts map and close calls.
// It is safe for concurrent use.
type CountingSource struct {
	src       membuf.NativeSource
	maps      atomic.Int64
	closes    atomic.Int64
	liveBytes atomic.Int64
}

// NewCountingSource wraps src. A nil src uses membuf.MmapSource.
func NewCountingSource(src membuf.NativeSource) *CountingSource {
	if src == nil {
		src = membuf.MmapSource{}
	}
	return &CountingSource{src: src}
}

// Map implements membuf.NativeSource.
func (s *CountingSource) Map(size int) (membuf.NativeBlock, error) {
	block, err := s.src.Map(size)
	if err != nil {
		return nil, err
	}
	s.maps.Add(1)
	s.liveBytes.Add(int64(size))
	return &countedBlock{NativeBlock: block, owner: s, size: size}, nil
}

// Maps returns the number of successful Map calls.
func (s *CountingSource) Maps() int64 { return s.maps.Load() }

// Closes returns the number of blocks closed.
func (s *CountingSource) Closes() int64 { return s.closes.Load() }

// Live returns the number of blocks mapped but not yet closed.
func (s *CountingSource) Live() int64 { return s.maps.Load() - s.closes.Load() }

// LiveBytes returns the bytes mapped but not yet closed.
func (s *CountingSource) LiveBytes() int64 { return s.liveBytes.Load() }

type countedBlock struct {
	membuf.NativeBlock
	owner  *CountingSource
	size   int
	closed atomic.Bool
}

func (b *countedBlock) Close() error {
	if !b.closed.Swap(true) {
		b.owner.closes.Add(1)
		b.owner.liveBytes.Add(-int64(b.size))
	}
	return b.NativeBlock.Close()
}

// FailingSource fails every Map call.
type FailingSource struct {
	Err error
}

// Map implements membuf.NativeSource.
func (s FailingSource) Map(int) (membuf.NativeBlock, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return nil, ErrInjected
}

// ShiftedSource returns blocks whose first byte lies Shift bytes past a
// page boundary, giving tests a known base address alignment.
type ShiftedSource struct {
	Shift int
}

// NewShiftedSource creates a ShiftedSource.
func NewShiftedSource(shift int) ShiftedSource {
	return ShiftedSource{Shift: shift}
}

// Map implements membuf.NativeSource.
func (s ShiftedSource) Map(size int) (membuf.NativeBlock, error) {
	m, err := mmap.MapAnon(size + s.Shift)
	if err != nil {
		return nil, err
	}
	r, err := m.Region(s.Shift, size)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	return &shiftedBlock{mapping: m, region: r}, nil
}

type shiftedBlock struct {
	mapping *mmap.Mapping
	region  *mmap.Region
}

func (b *shiftedBlock) Bytes() []byte { return b.region.Bytes() }

// Close unmaps the whole mapping, including the leading shift.
func (b *shiftedBlock) Close() error { return b.mapping.Close() }

// ShortSource returns blocks smaller than requested.
type ShortSource struct{}

// Map implements membuf.NativeSource.
func (ShortSource) Map(size int) (membuf.NativeBlock, error) {
	if size > 0 {
		size--
	}
	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, err
	}
	return m, nil
}
