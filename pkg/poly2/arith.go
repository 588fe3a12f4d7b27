package poly2

import (
	"github.com/crypto330/crypto330-go/internal/limbs"
	"github.com/crypto330/crypto330-go/pkg/crypto330"
)

// Add returns p + q, the coefficient-wise XOR.
func (p Poly) Add(q Poly) Poly {
	a, b := p.limbs(), q.limbs()
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make(limbs.Limbs, len(a))
	copy(z, a)
	for i, w := range b {
		z[i] ^= w
	}
	return Poly{d: limbs.Norm(z)}
}

// Sub is the same as Add in characteristic 2.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q)
}

// Mul returns p·q. Each pair of limbs is multiplied carrylessly into a 64-bit
// product whose low half lands in limb i+j and whose high half overflows into
// limb i+j+1; both are folded in with XOR.
func (p Poly) Mul(q Poly) Poly {
	a, b := p.limbs(), q.limbs()
	if limbs.IsZero(a) || limbs.IsZero(b) {
		return Poly{}
	}
	z := make(limbs.Limbs, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			lo, hi := clmul32(ai, bj)
			z[i+j] ^= lo
			z[i+j+1] ^= hi
		}
	}
	return Poly{d: limbs.Norm(z)}
}

// clmul32 is shift-and-xor multiplication of two 32-bit polynomials. The
// product has degree at most 62 and always fits in 64 bits.
func clmul32(x, y uint32) (lo, hi uint32) {
	var acc uint64
	yy := uint64(y)
	for x != 0 {
		if x&1 != 0 {
			acc ^= yy
		}
		x >>= 1
		yy <<= 1
	}
	return uint32(acc), uint32(acc >> limbs.Width)
}

// DivMod returns the quotient and remainder of p / d. It fails with
// crypto330.ErrDivideByZero when d is the zero polynomial.
func (p Poly) DivMod(d Poly) (q, r Poly, err error) {
	dl := d.limbs()
	if limbs.IsZero(dl) {
		return Poly{}, Poly{}, crypto330.Errorf("poly2.DivMod", "%w", crypto330.ErrDivideByZero)
	}
	dbits := limbs.BitLen(dl)
	rem := limbs.Clone(p.limbs())
	quo := make(limbs.Limbs, len(rem))
	for {
		rbits := limbs.BitLen(rem)
		if rbits < dbits {
			break
		}
		// align the divisor's leading term with the remainder's
		shift := uint(rbits - dbits)
		limbs.XorShlInPlace(rem, dl, shift)
		limbs.SetBitInPlace(quo, shift)
	}
	return Poly{d: limbs.Norm(quo)}, Poly{d: limbs.Clone(rem)}, nil
}

// Div returns the quotient of p / d.
func (p Poly) Div(d Poly) (Poly, error) {
	q, _, err := p.DivMod(d)
	return q, err
}

// Mod returns p reduced modulo m.
func (p Poly) Mod(m Poly) (Poly, error) {
	_, r, err := p.DivMod(m)
	return r, err
}

// MulMod returns p·q mod m.
func (p Poly) MulMod(q, m Poly) (Poly, error) {
	return p.Mul(q).Mod(m)
}

// SquareMod returns p² mod m.
func (p Poly) SquareMod(m Poly) (Poly, error) {
	return p.Mul(p).Mod(m)
}
