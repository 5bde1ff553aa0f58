package membuf

import (
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/membuf/internal/bounds"
)

// Sized is anything with a fixed byte capacity.
type Sized interface {
	Capacity() int64
}

// HeapBuffer is a managed byte container. Its capacity is its length.
//
// HeapBuffer deliberately has no address accessor; only *NativeBuffer does.
type HeapBuffer []byte

// Capacity implements Sized.
func (b HeapBuffer) Capacity() int64 {
	return int64(len(b))
}

// CheckBounds validates an access window against the buffer.
func (b HeapBuffer) CheckBounds(index int64, length int32) error {
	return CheckSliceBounds(b, index, length)
}

// Slice returns b[index:index+length] after a bounds check.
func (b HeapBuffer) Slice(index int64, length int32) ([]byte, error) {
	return sliceChecked(b, index, length)
}

// NativeBuffer is an aligned view into a block of native memory.
//
// The view starts Padding() bytes into the block and spans exactly
// Capacity() bytes. Free releases the whole block, not only the view.
type NativeBuffer struct {
	owner     *Allocator
	block     NativeBlock
	data      []byte
	blockSize int
	padding   int
	alignment int
	base      uintptr
	released  atomic.Bool
}

// Capacity implements Sized. It stays valid after Free.
func (b *NativeBuffer) Capacity() int64 {
	return int64(len(b.data))
}

// Alignment returns the boundary the buffer start was aligned to.
func (b *NativeBuffer) Alignment() int {
	return b.alignment
}

// Padding returns the distance from the block start to the aligned view.
func (b *NativeBuffer) Padding() int {
	return b.padding
}

// BlockSize returns the size of the underlying native block.
func (b *NativeBuffer) BlockSize() int {
	return b.blockSize
}

// BaseAddress returns the start address of the underlying block, or 0 once
// the buffer is released.
func (b *NativeBuffer) BaseAddress() uint64 {
	if b == nil || b.released.Load() {
		return 0
	}
	return uint64(b.base)
}

// Bytes returns the aligned view, or nil once the buffer is released.
// The slice must not be used after Free.
func (b *NativeBuffer) Bytes() []byte {
	if b.released.Load() {
		return nil
	}
	return b.data
}

// CheckBounds validates an access window against the buffer capacity.
func (b *NativeBuffer) CheckBounds(index int64, length int32) error {
	return CheckBounds(b.Capacity(), index, length)
}

// Slice returns the checked sub-view [index, index+length).
func (b *NativeBuffer) Slice(index int64, length int32) ([]byte, error) {
	if b.released.Load() {
		return nil, ErrReleased
	}
	return sliceChecked(b.data, index, length)
}

// Released reports whether Free has been called.
func (b *NativeBuffer) Released() bool {
	return b.released.Load()
}

// Free releases the native block. Only the first call has an effect;
// later calls return nil.
func (b *NativeBuffer) Free() error {
	if b.released.Swap(true) {
		return nil
	}
	err := b.block.Close()
	b.owner.release(b, err)
	if err != nil {
		return fmt.Errorf("membuf: free %d byte block: %w", b.blockSize, err)
	}
	return nil
}

func (b *NativeBuffer) String() string {
	return fmt.Sprintf("NativeBuffer{capacity: %d, alignment: %d, padding: %d, address: %#x, released: %t}",
		len(b.data), b.alignment, b.padding, NativeAddress(b), b.released.Load())
}

func sliceChecked(data []byte, index int64, length int32) ([]byte, error) {
	if length < 0 {
		return nil, &BoundsError{Index: index, Length: length, Capacity: int64(len(data))}
	}
	end, err := bounds.End(int64(len(data)), index, length)
	if err != nil {
		return nil, err
	}
	return data[index:end:end], nil
}
