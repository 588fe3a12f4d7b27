package hugeint

import (
	"math/bits"

	"github.com/crypto330/crypto330-go/internal/limbs"
	"github.com/crypto330/crypto330-go/pkg/crypto330"
)

// DivMod returns the quotient and remainder of x / y. It fails with
// crypto330.ErrDivideByZero when y is zero.
func (x Uint) DivMod(y Uint) (q, r Uint, err error) {
	a, b := x.limbs(), y.limbs()
	if limbs.IsZero(b) {
		return Uint{}, Uint{}, crypto330.Errorf("hugeint.DivMod", "%w", crypto330.ErrDivideByZero)
	}
	if limbs.Cmp(b, a) > 0 {
		return Uint{}, x, nil
	}
	if len(b) == 1 {
		qd, rd := divWord(a, b[0])
		return Uint{d: qd}, New(uint64(rd)), nil
	}
	qd, rd := divLarge(a, b)
	return Uint{d: qd}, Uint{d: rd}, nil
}

// Div returns x / y.
func (x Uint) Div(y Uint) (Uint, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns x mod y.
func (x Uint) Mod(y Uint) (Uint, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivUint64 returns x / d.
func (x Uint) DivUint64(d uint64) (Uint, error) {
	if d == 0 {
		return Uint{}, crypto330.Errorf("hugeint.DivUint64", "%w", crypto330.ErrDivideByZero)
	}
	if d > limbs.Max {
		return x.Div(New(d))
	}
	q, _ := divWord(x.limbs(), uint32(d))
	return Uint{d: q}, nil
}

// ModUint64 returns x mod d in a single pass over the limbs, keeping only a
// running remainder.
func (x Uint) ModUint64(d uint64) (uint64, error) {
	if d == 0 {
		return 0, crypto330.Errorf("hugeint.ModUint64", "%w", crypto330.ErrDivideByZero)
	}
	if d > limbs.Max {
		// rem<<32 would overflow for divisors wider than one limb
		r, err := x.Mod(New(d))
		return r.Uint64(), err
	}
	a := x.limbs()
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		rem = (rem<<limbs.Width | uint64(a[i])) % d
	}
	return rem, nil
}

// divWord divides a by a single non-zero limb.
func divWord(a limbs.Limbs, d uint32) (limbs.Limbs, uint32) {
	q := make(limbs.Limbs, len(a))
	var rem uint32
	for i := len(a) - 1; i >= 0; i-- {
		q[i], rem = bits.Div32(rem, a[i], d)
	}
	return limbs.Norm(q), rem
}

// divLarge is schoolbook long division for a >= b with len(b) >= 2.
//
// Both operands are shifted so the divisor's top limb has its high bit set.
// The dividend is then consumed one limb at a time, most significant first,
// into a running remainder window. Each quotient limb is estimated from the
// top of the window and the top of the divisor; with a normalized divisor the
// estimate is never low and is at most two too high.
func divLarge(a, b limbs.Limbs) (q, r limbs.Limbs) {
	shift := uint(bits.LeadingZeros32(b[len(b)-1]))
	a = limbs.Shl(a, shift)
	b = limbs.Shl(b, shift)
	n := len(b)

	window := limbs.Clone(a[len(a)-n+1:])
	q = make(limbs.Limbs, len(a)-n+1)
	for pos := len(a) - n; pos >= 0; pos-- {
		window = prependLimb(a[pos], window)

		var digit uint64
		switch {
		case len(window) == n:
			digit = topTwo(window) / topTwo(b)
		case len(window) > n:
			digit = topTwo(window) / uint64(b[n-1])
		}
		if digit > limbs.Max {
			digit = limbs.Max
		}
		if digit != 0 {
			prod := mulWord(b, uint32(digit))
			for corrections := 0; limbs.Cmp(window, prod) < 0; corrections++ {
				if corrections == 2 {
					panic("hugeint: quotient digit estimate off by more than two")
				}
				digit--
				prod = Uint{d: prod}.Sub(Uint{d: b}).d
			}
			window = Uint{d: window}.Sub(Uint{d: prod}).d
		}
		q[pos] = uint32(digit)
	}
	return limbs.Norm(q), limbs.Shr(window, shift)
}

// prependLimb shifts w up by one limb and places d at the bottom.
func prependLimb(d uint32, w limbs.Limbs) limbs.Limbs {
	z := make(limbs.Limbs, len(w)+1)
	z[0] = d
	copy(z[1:], w)
	return limbs.Norm(z)
}

// topTwo packs the two most significant limbs of a multi-limb value.
func topTwo(x limbs.Limbs) uint64 {
	return uint64(x[len(x)-1])<<limbs.Width | uint64(x[len(x)-2])
}
