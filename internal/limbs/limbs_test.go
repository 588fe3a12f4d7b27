package limbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNorm(t *testing.T) {
	assert.Equal(t, Limbs{0}, Norm(nil))
	assert.Equal(t, Limbs{0}, Norm(Limbs{0, 0, 0}))
	assert.Equal(t, Limbs{1, 2}, Norm(Limbs{1, 2, 0, 0}))
	assert.Equal(t, Limbs{0, 0, 5}, Norm(Limbs{0, 0, 5}))
}

func TestBitLen(t *testing.T) {
	assert.Equal(t, 0, BitLen(Limbs{0}))
	assert.Equal(t, 1, BitLen(Limbs{1}))
	assert.Equal(t, 32, BitLen(Limbs{0x80000000}))
	assert.Equal(t, 33, BitLen(Limbs{0, 1}))
	assert.Equal(t, 64, BitLen(FromUint64(^uint64(0))))
}

func TestShiftsMatchUint64(t *testing.T) {
	values := []uint64{0, 1, 3, 0xffffffff, 0x1_0000_0000, 0xdeadbeef, 1<<40 + 12345}
	for _, v := range values {
		for n := uint(0); n < 24; n++ {
			if bitsLen(v)+int(n) <= 64 {
				assert.Equal(t, v<<n, Low64(Shl(FromUint64(v), n)), "%d << %d", v, n)
			}
			assert.Equal(t, v>>n, Low64(Shr(FromUint64(v), n)), "%d >> %d", v, n)
		}
	}
}

func TestShiftAcrossLimbs(t *testing.T) {
	x := Limbs{0x89abcdef, 0x01234567}
	got := Shl(x, 100)
	require.Equal(t, 100+57, BitLen(got))
	assert.Equal(t, x, Shr(got, 100))
	assert.Equal(t, Limbs{0}, Shr(x, 64))
	assert.Equal(t, Limbs{0}, Shr(x, 1<<40))
}

func TestXorShlInPlace(t *testing.T) {
	dst := make(Limbs, 3)
	XorShlInPlace(dst, Limbs{0xffffffff}, 36)
	assert.Equal(t, Limbs{0, 0xfffffff0, 0xf}, dst)
	XorShlInPlace(dst, Limbs{0xffffffff}, 36)
	assert.Equal(t, Limbs{0, 0, 0}, dst)
}

func TestByteCodecs(t *testing.T) {
	x := Limbs{0x04030201, 0x05}
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 0, 0, 0}, BytesLE(x))
	assert.Equal(t, x, FromBytesLE([]byte{1, 2, 3, 4, 5}))
	assert.Equal(t, []byte{5, 4, 3, 2, 1}, BytesBE(x))
	assert.Equal(t, x, FromBytesBE([]byte{0, 0, 5, 4, 3, 2, 1}))
	assert.Empty(t, BytesBE(Zero()))
	assert.Equal(t, Limbs{0}, FromBytesBE(nil))
}

func TestHex(t *testing.T) {
	x, _, ok := FromHex("0x1FfFFfffF")
	require.True(t, ok)
	assert.Equal(t, Limbs{0xffffffff, 1}, x)
	assert.Equal(t, "1ffffffff", Hex(x))
	assert.Equal(t, "0", Hex(Zero()))

	_, off, ok := FromHex("12g4")
	assert.False(t, ok)
	assert.Equal(t, 2, off)

	_, _, ok = FromHex("")
	assert.False(t, ok)
}

func bitsLen(v uint64) int {
	return BitLen(FromUint64(v))
}
