package mmap

import (
	"fmt"

	"github.com/hupe1980/membuf/internal/bounds"
)

// Region represents a subsection of a mapping.
// It does not own the memory; the parent Mapping does.
type Region struct {
	parent *Mapping
	offset int
	size   int
}

// Region creates a new view into the mapping.
func (m *Mapping) Region(offset, size int) (*Region, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	if offset < 0 || size < 0 || offset > m.size || size > m.size-offset {
		return nil, fmt.Errorf("%w: region offset=%d, size=%d, mapping=%d", bounds.ErrOutOfBounds, offset, size, m.size)
	}
	return &Region{
		parent: m,
		offset: offset,
		size:   size,
	}, nil
}

// Offset returns the start of the region within its mapping.
func (r *Region) Offset() int {
	return r.offset
}

// Size returns the length of the region in bytes.
func (r *Region) Size() int {
	return r.size
}

// Bytes returns the byte slice for this region, capacity-limited to the
// region. The slice is valid only until the parent Mapping is closed.
func (r *Region) Bytes() []byte {
	if r.parent.closed.Load() {
		return nil
	}
	end := r.offset + r.size
	return r.parent.data[r.offset:end:end]
}
