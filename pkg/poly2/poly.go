package poly2

import (
	"github.com/crypto330/crypto330-go/internal/limbs"
	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
)

// Poly is a polynomial over GF(2). Bit i of the limb sequence is the
// coefficient of x^i.
//
// Like hugeint.Uint, Poly is an immutable value and its zero value is the
// zero polynomial.
type Poly struct {
	d limbs.Limbs
}

// New returns the polynomial whose coefficients are the bits of v.
func New(v uint64) Poly {
	return Poly{d: limbs.FromUint64(v)}
}

// FromBits returns the polynomial with a 1 coefficient at each listed power,
// e.g. FromBits(0, 2, 4, 8, 307) is x^307 + x^8 + x^4 + x^2 + 1. Repeated
// powers cancel.
func FromBits(powers ...uint) Poly {
	var top uint
	for _, p := range powers {
		top = max(top, p)
	}
	z := make(limbs.Limbs, top/limbs.Width+1)
	for _, p := range powers {
		z[p/limbs.Width] ^= 1 << (p % limbs.Width)
	}
	return Poly{d: limbs.Norm(z)}
}

// FromHex parses the coefficient bits from a hexadecimal string.
func FromHex(s string) (Poly, error) {
	d, off, ok := limbs.FromHex(s)
	if !ok {
		return Poly{}, crypto330.Errorf("poly2.FromHex", "%w: invalid hex string at offset %d", crypto330.ErrParse, off)
	}
	return Poly{d: d}, nil
}

// MustFromHex is like FromHex but panics on malformed input.
func MustFromHex(s string) Poly {
	p, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return p
}

// FromUint reinterprets the bits of u as coefficients.
func FromUint(u hugeint.Uint) Poly {
	return Poly{d: limbs.Limbs(u.Limbs())}
}

// Uint reinterprets the coefficients of p as the bits of an integer.
func (p Poly) Uint() hugeint.Uint {
	return hugeint.FromLimbs(p.limbs())
}

func (p Poly) limbs() limbs.Limbs {
	if len(p.d) == 0 {
		return limbs.Zero()
	}
	return p.d
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return limbs.IsZero(p.limbs())
}

// IsOne reports whether p is the constant 1.
func (p Poly) IsOne() bool {
	d := p.limbs()
	return len(d) == 1 && d[0] == 1
}

// Equal reports whether p and q have the same coefficients.
func (p Poly) Equal(q Poly) bool {
	return limbs.Cmp(p.limbs(), q.limbs()) == 0
}

// BitLen returns Degree()+1, and 0 for the zero polynomial.
func (p Poly) BitLen() int {
	return limbs.BitLen(p.limbs())
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return p.BitLen() - 1
}

// Coeff returns the coefficient of x^i.
func (p Poly) Coeff(i uint) uint {
	return limbs.Bit(p.limbs(), i)
}

// Hex returns the coefficient bits in lowercase hexadecimal.
func (p Poly) Hex() string {
	return limbs.Hex(p.limbs())
}

func (p Poly) String() string {
	return p.Hex()
}

// Lsh multiplies p by x^n.
func (p Poly) Lsh(n uint) Poly {
	return Poly{d: limbs.Shl(p.limbs(), n)}
}

// Rsh divides p by x^n, dropping the low terms.
func (p Poly) Rsh(n uint) Poly {
	return Poly{d: limbs.Shr(p.limbs(), n)}
}
