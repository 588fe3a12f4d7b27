package hugeint

import (
	"math/bits"

	"github.com/crypto330/crypto330-go/internal/limbs"
)

// Add returns x + y.
func (x Uint) Add(y Uint) Uint {
	a, b := x.limbs(), y.limbs()
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make(limbs.Limbs, len(a)+1)
	var carry uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		z[i], carry = bits.Add32(a[i], bi, carry)
	}
	z[len(a)] = carry
	return Uint{d: limbs.Norm(z)}
}

// AddUint64 returns x + v.
func (x Uint) AddUint64(v uint64) Uint {
	return x.Add(New(v))
}

// Sub returns x - y, or 0 when y > x. Subtraction saturates instead of
// wrapping because Uint has no negative values.
func (x Uint) Sub(y Uint) Uint {
	a, b := x.limbs(), y.limbs()
	if limbs.Cmp(a, b) <= 0 {
		return Uint{}
	}
	z := make(limbs.Limbs, len(a))
	var borrow uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		z[i], borrow = bits.Sub32(a[i], bi, borrow)
	}
	return Uint{d: limbs.Norm(z)}
}

// SubUint64 returns x - v, saturating at 0.
func (x Uint) SubUint64(v uint64) Uint {
	return x.Sub(New(v))
}

// Mul returns x * y using schoolbook multiplication.
func (x Uint) Mul(y Uint) Uint {
	a, b := x.limbs(), y.limbs()
	if limbs.IsZero(a) || limbs.IsZero(b) {
		return Uint{}
	}
	z := make(limbs.Limbs, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint64
		for j, bj := range b {
			// (2^32-1)^2 + 2*(2^32-1) == 2^64-1, so t cannot overflow
			t := uint64(ai)*uint64(bj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> limbs.Width
		}
		z[i+len(b)] = uint32(carry)
	}
	return Uint{d: limbs.Norm(z)}
}

// MulUint64 returns x * v.
func (x Uint) MulUint64(v uint64) Uint {
	if v > limbs.Max {
		return x.Mul(New(v))
	}
	return Uint{d: mulWord(x.limbs(), uint32(v))}
}

// mulWord multiplies a by a single limb.
func mulWord(a limbs.Limbs, w uint32) limbs.Limbs {
	z := make(limbs.Limbs, len(a)+1)
	var carry uint32
	for i, d := range a {
		hi, lo := bits.Mul32(d, w)
		var c uint32
		z[i], c = bits.Add32(lo, carry, 0)
		carry = hi + c
	}
	z[len(a)] = carry
	return limbs.Norm(z)
}
