package membuf

import (
	"encoding/binary"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNullBytes(t *testing.T) {
	b := NullBytes()
	assert.Equal(t, []byte{'n', 'u', 'l', 'l'}, b)
	assert.True(t, utf8.Valid(b))

	// Callers cannot corrupt later reads.
	b[0] = 'X'
	assert.Equal(t, []byte("null"), NullBytes())
}

func TestNativeByteOrder_Stable(t *testing.T) {
	first := NativeByteOrder()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, NativeByteOrder())
	}
	assert.Contains(t, []ByteOrder{LittleEndian, BigEndian}, first)

	var v uint16 = 0x0102
	buf := make([]byte, 2)
	first.Binary().PutUint16(buf, v)
	assert.Equal(t, v, binary.NativeEndian.Uint16(buf))
}

func TestArrayBaseOffset_Stable(t *testing.T) {
	assert.Equal(t, 0, ArrayBaseOffset)
	assert.Equal(t, ArrayBaseOffset, ArrayBaseOffset)
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []int{1, 2, 4, 8, 16, 1024, 1 << 30} {
		assert.True(t, IsPowerOfTwo(v), "%d", v)
	}
	for _, v := range []int{0, -4, 3, 6, 100} {
		assert.False(t, IsPowerOfTwo(v), "%d", v)
	}
	assert.True(t, IsPowerOfTwo(uint8(128)))
	assert.False(t, IsPowerOfTwo(int32(-2147483648)))
}

func TestPlatformFacts(t *testing.T) {
	assert.True(t, IsPowerOfTwo(CacheLineSize))
	assert.True(t, IsPowerOfTwo(PageSize()))
	assert.NotEmpty(t, PlatformInfo())
}
