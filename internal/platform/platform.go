// Package platform exposes read-only facts about the host: byte order,
// cache-line size, page size and the layout of Go byte containers.
package platform

import (
	"encoding/binary"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// ByteOrder identifies the order of bytes in multi-byte values.
type ByteOrder uint8

const (
	// LittleEndian stores the least significant byte first.
	LittleEndian ByteOrder = iota
	// BigEndian stores the most significant byte first.
	BigEndian
)

// String implements fmt.Stringer.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// Binary returns the encoding/binary codec for o.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// CacheLineSize is the cache-line size golang.org/x/sys/cpu pads to on this GOARCH.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// ArrayBaseOffset is the distance from the start of a Go byte array to its
// first element. Go arrays carry no object header, so it is zero.
const ArrayBaseOffset = 0

var (
	nativeOrder = func() ByteOrder {
		if cpu.IsBigEndian {
			return BigEndian
		}
		return LittleEndian
	}()

	pageSize = os.Getpagesize()
)

// NativeByteOrder returns the byte order of the host.
func NativeByteOrder() ByteOrder {
	return nativeOrder
}

// PageSize returns the virtual memory page size of the host.
func PageSize() int {
	return pageSize
}

// Info describes the host platform.
func Info() string {
	return fmt.Sprintf("GOOS=%s GOARCH=%s endianness=%s cacheline=%d pagesize=%d",
		runtime.GOOS, runtime.GOARCH, nativeOrder, CacheLineSize, pageSize)
}
