package numtheory

import (
	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
)

// mustMod reduces x modulo a modulus the caller has already checked is
// non-zero.
func mustMod(x, m hugeint.Uint) hugeint.Uint {
	r, err := x.Mod(m)
	if err != nil {
		panic(err)
	}
	return r
}

// PowMod returns base^exp mod m by right-to-left square-and-multiply. The
// running square is reduced on every step, multiply or not, so operands stay
// below m².
func PowMod(base, exp, m hugeint.Uint) (hugeint.Uint, error) {
	if m.IsZero() {
		return hugeint.Uint{}, crypto330.Errorf("numtheory.PowMod", "%w: zero modulus", crypto330.ErrDivideByZero)
	}
	res := mustMod(hugeint.New(1), m)
	for !exp.IsZero() {
		if exp.IsOdd() {
			res = mustMod(res.Mul(base), m)
		}
		base = mustMod(base.Mul(base), m)
		exp = exp.Rsh(1)
	}
	return res, nil
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b hugeint.Uint) hugeint.Uint {
	for !b.IsZero() {
		a, b = b, mustMod(a, b)
	}
	return a
}
