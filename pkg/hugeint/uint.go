package hugeint

import (
	"github.com/crypto330/crypto330-go/internal/limbs"
)

// Uint is an unsigned arbitrary-precision integer stored as canonical base
// 2^32 limbs, least significant first.
//
// Uint is an immutable value: every operation returns a new Uint and never
// touches its operands, so values may be copied and shared freely across
// goroutines. The zero value is 0.
type Uint struct {
	d limbs.Limbs
}

// New returns v as a Uint.
func New(v uint64) Uint {
	return Uint{d: limbs.FromUint64(v)}
}

// FromLimbs builds a Uint from little-endian 32-bit limbs. The slice is copied.
func FromLimbs(d []uint32) Uint {
	return Uint{d: limbs.Clone(d)}
}

// FromBytes interprets b as a big-endian unsigned integer.
func FromBytes(b []byte) Uint {
	return Uint{d: limbs.FromBytesBE(b)}
}

// FromLimbBytes interprets b as consecutive 4-byte little-endian limbs, least
// significant limb first. This is the block encoding used by the RSA padding.
func FromLimbBytes(b []byte) Uint {
	return Uint{d: limbs.FromBytesLE(b)}
}

func (x Uint) limbs() limbs.Limbs {
	if len(x.d) == 0 {
		return limbs.Zero()
	}
	return x.d
}

// Limbs returns a copy of the little-endian limbs of x.
func (x Uint) Limbs() []uint32 {
	return limbs.Clone(x.limbs())
}

// LimbLen returns the number of limbs in the canonical form of x.
func (x Uint) LimbLen() int {
	return len(x.limbs())
}

// IsZero reports whether x == 0.
func (x Uint) IsZero() bool {
	return limbs.IsZero(x.limbs())
}

// IsOdd reports whether the lowest bit of x is set.
func (x Uint) IsOdd() bool {
	return x.limbs()[0]&1 == 1
}

// BitLen returns the position of the highest set bit plus one. BitLen of zero
// is 0.
func (x Uint) BitLen() int {
	return limbs.BitLen(x.limbs())
}

// BitSize is BitLen except that zero reports 1, the width of its single digit.
func (x Uint) BitSize() int {
	if n := x.BitLen(); n > 0 {
		return n
	}
	return 1
}

// Bit returns the value of bit i.
func (x Uint) Bit(i uint) uint {
	return limbs.Bit(x.limbs(), i)
}

// Uint64 returns the low 64 bits of x. Wider values are truncated.
func (x Uint) Uint64() uint64 {
	return limbs.Low64(x.limbs())
}

// IsUint64 reports whether x fits in a uint64 without truncation.
func (x Uint) IsUint64() bool {
	return len(x.limbs()) <= 2
}

// Bytes returns the minimal big-endian encoding of x. Zero encodes as an empty
// slice.
func (x Uint) Bytes() []byte {
	return limbs.BytesBE(x.limbs())
}

// LimbBytes returns every limb of x as 4 little-endian bytes, so the result
// length is always a multiple of four. FromLimbBytes reverses it.
func (x Uint) LimbBytes() []byte {
	return limbs.BytesLE(x.limbs())
}

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Uint) Cmp(y Uint) int {
	return limbs.Cmp(x.limbs(), y.limbs())
}

// Equal reports whether x == y.
func (x Uint) Equal(y Uint) bool { return x.Cmp(y) == 0 }

// EqualUint64 reports whether x == v.
func (x Uint) EqualUint64(v uint64) bool { return x.Equal(New(v)) }

// Less reports whether x < y.
func (x Uint) Less(y Uint) bool { return x.Cmp(y) < 0 }

// LessEq reports whether x <= y.
func (x Uint) LessEq(y Uint) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Uint) Greater(y Uint) bool { return x.Cmp(y) > 0 }

// GreaterEq reports whether x >= y.
func (x Uint) GreaterEq(y Uint) bool { return x.Cmp(y) >= 0 }

// Lsh returns x << n.
func (x Uint) Lsh(n uint) Uint {
	return Uint{d: limbs.Shl(x.limbs(), n)}
}

// Rsh returns x >> n.
func (x Uint) Rsh(n uint) Uint {
	return Uint{d: limbs.Shr(x.limbs(), n)}
}
