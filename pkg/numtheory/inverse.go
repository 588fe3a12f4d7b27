package numtheory

import (
	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/poly2"
)

// signed is a Bézout coefficient: a magnitude with its sign carried alongside,
// because hugeint.Uint cannot be negative. Zero is never negative.
type signed struct {
	mag hugeint.Uint
	neg bool
}

func (s signed) norm() signed {
	if s.mag.IsZero() {
		s.neg = false
	}
	return s
}

// sub returns s - t.
func (s signed) sub(t signed) signed {
	if s.neg != t.neg {
		return signed{mag: s.mag.Add(t.mag), neg: s.neg}.norm()
	}
	if s.mag.GreaterEq(t.mag) {
		return signed{mag: s.mag.Sub(t.mag), neg: s.neg}.norm()
	}
	return signed{mag: t.mag.Sub(s.mag), neg: !s.neg}.norm()
}

// mul scales s by a non-negative factor.
func (s signed) mul(k hugeint.Uint) signed {
	return signed{mag: s.mag.Mul(k), neg: s.neg}.norm()
}

// extended returns x, y and g = gcd(a, b) with a·x + b·y = g.
//
// The recursion is on (b mod a, a) and bottoms out at a == 0 with (0, 1).
// Going back up, y takes the child's x and x becomes y' - (b/a)·x'.
func extended(a, b hugeint.Uint) (x, y signed, g hugeint.Uint) {
	if a.IsZero() {
		return signed{}, signed{mag: hugeint.New(1)}, b
	}
	q, r, _ := b.DivMod(a) // a is non-zero
	x1, y1, g := extended(r, a)
	return y1.sub(x1.mul(q)), x1, g
}

// InverseModulo returns a⁻¹ mod m, the unique value in [0, m) whose product
// with a is 1 modulo m.
//
// It fails with crypto330.ErrDivideByZero when m is zero and with
// crypto330.ErrInvalidInverse when gcd(a, m) != 1.
func InverseModulo(a, m hugeint.Uint) (hugeint.Uint, error) {
	if m.IsZero() {
		return hugeint.Uint{}, crypto330.Errorf("numtheory.InverseModulo", "%w: zero modulus", crypto330.ErrDivideByZero)
	}
	x, _, g := extended(a, m)
	if !g.EqualUint64(1) {
		return hugeint.Uint{}, crypto330.Errorf("numtheory.InverseModulo", "%w: gcd is %s", crypto330.ErrInvalidInverse, g)
	}
	inv := mustMod(x.mag, m)
	if x.neg && !inv.IsZero() {
		inv = m.Sub(inv)
	}
	return inv, nil
}

// extendedPoly mirrors extended over GF(2)[x]. Without signs, subtraction is
// addition.
func extendedPoly(a, b poly2.Poly) (x, y, g poly2.Poly) {
	if a.IsZero() {
		return poly2.Poly{}, poly2.New(1), b
	}
	q, r, _ := b.DivMod(a) // a is non-zero
	x1, y1, g := extendedPoly(r, a)
	return y1.Add(q.Mul(x1)), x1, g
}

// InversePoly returns a⁻¹ mod m in GF(2)[x]/(m).
//
// It fails with crypto330.ErrDivideByZero when m is zero and with
// crypto330.ErrInvalidInverse when a and m share a non-constant factor
// (in particular when a ≡ 0 mod m).
func InversePoly(a, m poly2.Poly) (poly2.Poly, error) {
	if m.IsZero() {
		return poly2.Poly{}, crypto330.Errorf("numtheory.InversePoly", "%w: zero modulus", crypto330.ErrDivideByZero)
	}
	x, _, g := extendedPoly(a, m)
	if !g.IsOne() {
		return poly2.Poly{}, crypto330.Errorf("numtheory.InversePoly", "%w: gcd is %s", crypto330.ErrInvalidInverse, g)
	}
	inv, _ := x.Mod(m) // m is non-zero
	return inv, nil
}
