// Package limbs holds the digit representation shared by hugeint.Uint and
// poly2.Poly.
//
// A value is a slice of 32-bit limbs, least significant first. A canonical
// slice has no trailing zero limb unless it is the single-limb zero [0].
// Helpers in this package never modify their inputs unless the name says so
// (XorShlInPlace, SetBitInPlace).
package limbs

import "math/bits"

const (
	// Width is the number of bits in one limb.
	Width = 32
	// Max is the largest value a single limb can hold.
	Max = 1<<Width - 1
)

// Limbs is a little-endian sequence of base 2^32 digits.
type Limbs []uint32

// Zero returns a fresh canonical zero.
func Zero() Limbs {
	return Limbs{0}
}

// Norm trims trailing zero limbs, keeping at least one limb. It reslices x and
// does not copy.
func Norm(x Limbs) Limbs {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return Zero()
	}
	return x[:i]
}

// Clone returns a canonical copy of x.
func Clone(x Limbs) Limbs {
	x = Norm(x)
	z := make(Limbs, len(x))
	copy(z, x)
	return z
}

// IsZero reports whether a canonical x is zero.
func IsZero(x Limbs) bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// FromUint64 splits v into canonical limbs.
func FromUint64(v uint64) Limbs {
	if v>>Width == 0 {
		return Limbs{uint32(v)}
	}
	return Limbs{uint32(v), uint32(v >> Width)}
}

// Low64 folds every limb into a uint64, so values wider than 64 bits keep only
// their low 64 bits.
func Low64(x Limbs) uint64 {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		v = v<<Width | uint64(x[i])
	}
	return v
}

// BitLen returns the index of the highest set bit plus one; zero has length 0.
func BitLen(x Limbs) int {
	x = Norm(x)
	top := len(x) - 1
	return top*Width + bits.Len32(x[top])
}

// Bit returns bit i of x.
func Bit(x Limbs, i uint) uint {
	w := i / Width
	if w >= uint(len(x)) {
		return 0
	}
	return uint(x[w]>>(i%Width)) & 1
}

// Cmp compares canonical x and y and returns -1, 0 or +1.
func Cmp(x, y Limbs) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Shl returns x << n in canonical form.
func Shl(x Limbs, n uint) Limbs {
	x = Norm(x)
	if IsZero(x) {
		return Zero()
	}
	whole := int(n / Width)
	off := n % Width
	z := make(Limbs, len(x)+whole+1)
	if off == 0 {
		copy(z[whole:], x)
		return Norm(z)
	}
	var carry uint32
	for i, d := range x {
		z[i+whole] = d<<off | carry
		carry = d >> (Width - off)
	}
	z[len(x)+whole] = carry
	return Norm(z)
}

// Shr returns x >> n in canonical form.
func Shr(x Limbs, n uint) Limbs {
	x = Norm(x)
	whole := n / Width
	if whole >= uint(len(x)) {
		return Zero()
	}
	off := n % Width
	src := x[whole:]
	z := make(Limbs, len(src))
	for i := range src {
		z[i] = src[i] >> off
		if off != 0 && i+1 < len(src) {
			z[i] |= src[i+1] << (Width - off)
		}
	}
	return Norm(z)
}

// XorShlInPlace computes dst ^= src << n. Bits shifted past the end of dst are
// dropped, so callers size dst to hold the result.
func XorShlInPlace(dst, src Limbs, n uint) {
	whole := int(n / Width)
	off := n % Width
	for i, w := range src {
		j := i + whole
		if j >= len(dst) {
			return
		}
		dst[j] ^= w << off
		if off != 0 && j+1 < len(dst) {
			dst[j+1] ^= w >> (Width - off)
		}
	}
}

// SetBitInPlace sets bit i of x, which must be long enough.
func SetBitInPlace(x Limbs, i uint) {
	x[i/Width] |= 1 << (i % Width)
}
