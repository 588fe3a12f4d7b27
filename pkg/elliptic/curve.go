package elliptic

import (
	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/numtheory"
	"github.com/crypto330/crypto330-go/pkg/poly2"
)

// Curve is a binary elliptic curve together with a base point G of prime
// order N.
type Curve struct {
	mod poly2.Poly
	a   poly2.Poly
	b   poly2.Poly
	gx  poly2.Poly
	gy  poly2.Poly
	n   hugeint.Uint
}

// NewCurve builds the curve y² + xy = x³ + a·x² + b over GF(2)[x]/(mod) with
// base point (gx, gy) of order n.
//
// The coefficients and the base point are reduced modulo mod. NewCurve fails
// with crypto330.ErrInvalidParameter when mod has degree below 1, when n is
// below 2, or when the base point does not satisfy the curve equation. It
// does not check that mod is irreducible or that n is the order of G.
func NewCurve(mod, a, b, gx, gy poly2.Poly, n hugeint.Uint) (*Curve, error) {
	const op = "elliptic.NewCurve"
	if mod.Degree() < 1 {
		return nil, crypto330.Errorf(op, "%w: field polynomial %s has degree below 1", crypto330.ErrInvalidParameter, mod)
	}
	if n.Less(hugeint.New(2)) {
		return nil, crypto330.Errorf(op, "%w: order %s is below 2", crypto330.ErrInvalidParameter, n)
	}
	c := &Curve{mod: mod, n: n}
	c.a = c.reduce(a)
	c.b = c.reduce(b)
	c.gx = c.reduce(gx)
	c.gy = c.reduce(gy)
	if !c.G().IsOnCurve() {
		return nil, crypto330.Errorf(op, "%w: base point is not on the curve", crypto330.ErrInvalidParameter)
	}
	return c, nil
}

// G returns the base point.
func (c *Curve) G() Point {
	return Point{c: c, x: c.gx, y: c.gy}
}

// N returns the order of the base point.
func (c *Curve) N() hugeint.Uint { return c.n }

// Modulus returns the field polynomial.
func (c *Curve) Modulus() poly2.Poly { return c.mod }

// A returns the x² coefficient.
func (c *Curve) A() poly2.Poly { return c.a }

// B returns the constant coefficient.
func (c *Curve) B() poly2.Poly { return c.b }

// Infinity returns the identity element of the group.
func (c *Curve) Infinity() Point {
	return Point{c: c, inf: true}
}

// Point returns the affine point (x, y) on c with both coordinates reduced
// modulo the field polynomial. The result is not checked against the curve
// equation; use IsOnCurve for that.
func (c *Curve) Point(x, y poly2.Poly) Point {
	return Point{c: c, x: c.reduce(x), y: c.reduce(y)}
}

// GeneratePoint returns k·G for k drawn uniformly from [1, N-1].
func (c *Curve) GeneratePoint(src numtheory.Source) (Point, error) {
	k := numtheory.RandRange(hugeint.New(1), c.n.SubUint64(1), src)
	return c.G().Mul(k)
}

func (c *Curve) reduce(p poly2.Poly) poly2.Poly {
	r, _ := p.Mod(c.mod) // mod is non-zero
	return r
}

func (c *Curve) mul(p, q poly2.Poly) poly2.Poly {
	return c.reduce(p.Mul(q))
}

func (c *Curve) inv(p poly2.Poly) (poly2.Poly, error) {
	return numtheory.InversePoly(p, c.mod)
}
