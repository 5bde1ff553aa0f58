package align

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	for shift := 0; shift < 63; shift++ {
		assert.True(t, IsPowerOfTwo(int64(1)<<shift), "1<<%d", shift)
	}
	assert.True(t, IsPowerOfTwo(uint64(1)<<63))

	for _, v := range []int{0, -1, -2, -8, 3, 6, 7, 12, 100, 1023, math.MaxInt} {
		assert.False(t, IsPowerOfTwo(v), "%d", v)
	}
	assert.False(t, IsPowerOfTwo(int32(math.MinInt32)))
}

func TestPadding(t *testing.T) {
	tests := []struct {
		addr, alignment, want uintptr
	}{
		{0, 8, 0},
		{64, 8, 0},
		{65, 8, 7},
		{71, 8, 1},
		{4096, 4096, 0},
		{4097, 4096, 4095},
		{12345, 1, 0},
		{3, 2, 1},
	}

	for _, tt := range tests {
		got := Padding(tt.addr, tt.alignment)
		assert.Equal(t, tt.want, got, "addr=%d alignment=%d", tt.addr, tt.alignment)
		assert.Zero(t, (tt.addr+got)%tt.alignment)
		assert.Less(t, got, tt.alignment)
	}
}

func TestPadding_AlreadyAligned(t *testing.T) {
	// An aligned address must not be pushed a full alignment forward.
	for shift := 0; shift < 20; shift++ {
		alignment := uintptr(1) << shift
		for k := uintptr(0); k < 4; k++ {
			assert.Zero(t, Padding(k*alignment, alignment))
		}
	}
}
