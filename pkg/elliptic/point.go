package elliptic

import (
	"fmt"

	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/poly2"
)

// Point is an element of a Curve's group: either the point at infinity or an
// affine pair (x, y). Points are values; the zero Point belongs to no curve
// and every operation on it fails.
type Point struct {
	c    *Curve
	x, y poly2.Poly
	inf  bool
}

// Curve returns the curve p belongs to.
func (p Point) Curve() *Curve { return p.c }

// X returns the affine x coordinate. It is zero for the point at infinity.
func (p Point) X() poly2.Poly { return p.x }

// Y returns the affine y coordinate. It is zero for the point at infinity.
func (p Point) Y() poly2.Poly { return p.y }

// IsInfinity reports whether p is the identity element.
func (p Point) IsInfinity() bool { return p.inf }

// Equal reports whether p and q are the same point of the same curve.
func (p Point) Equal(q Point) bool {
	if p.c != q.c || p.inf != q.inf {
		return false
	}
	return p.inf || (p.x.Equal(q.x) && p.y.Equal(q.y))
}

// String formats p as (x, y) in hex, or "inf".
func (p Point) String() string {
	if p.inf {
		return "inf"
	}
	return fmt.Sprintf("(%s, %s)", p.x.Hex(), p.y.Hex())
}

// IsOnCurve reports whether p satisfies y² + xy = x³ + Ax² + B. The point at
// infinity is on every curve.
func (p Point) IsOnCurve() bool {
	c := p.c
	if c == nil {
		return false
	}
	if p.inf {
		return true
	}
	xx := c.mul(p.x, p.x)
	lhs := c.mul(p.y, p.y).Add(c.mul(p.x, p.y))
	rhs := c.mul(xx, p.x).Add(c.mul(c.a, xx)).Add(c.b)
	return lhs.Equal(rhs)
}

// Neg returns -p = (x, x + y).
func (p Point) Neg() Point {
	if p.inf {
		return p
	}
	return Point{c: p.c, x: p.x, y: p.x.Add(p.y)}
}

// Add returns p + q.
//
// When both points share an x coordinate the tangent slope (x² + y)/x is
// used. If that shared x is zero, or the y coordinates differ (q = -p), the
// sum is the point at infinity.
func (p Point) Add(q Point) (Point, error) {
	const op = "elliptic.Point.Add"
	if p.c == nil || p.c != q.c {
		return Point{}, crypto330.Errorf(op, "%w", crypto330.ErrIncompatibleCurve)
	}
	if p.inf {
		return q, nil
	}
	if q.inf {
		return p, nil
	}
	c := p.c

	var k poly2.Poly
	if p.x.Equal(q.x) {
		if !p.y.Equal(q.y) || p.x.IsZero() {
			return c.Infinity(), nil
		}
		xinv, err := c.inv(p.x)
		if err != nil {
			return Point{}, crypto330.Wrap(op, err)
		}
		k = c.mul(c.mul(p.x, p.x).Add(p.y), xinv)
	} else {
		dinv, err := c.inv(p.x.Add(q.x))
		if err != nil {
			return Point{}, crypto330.Wrap(op, err)
		}
		k = c.mul(p.y.Add(q.y), dinv)
	}

	x3 := c.mul(k, k).Add(k).Add(c.a).Add(p.x).Add(q.x)
	y3 := c.mul(p.x.Add(x3), k).Add(x3).Add(p.y)
	return Point{c: c, x: x3, y: y3}, nil
}

// Double returns p + p.
func (p Point) Double() (Point, error) {
	return p.Add(p)
}

// Mul returns k·p by double-and-add over the bits of k from the least
// significant end. 0·p is the point at infinity.
func (p Point) Mul(k hugeint.Uint) (Point, error) {
	if p.c == nil {
		return Point{}, crypto330.Errorf("elliptic.Point.Mul", "%w", crypto330.ErrIncompatibleCurve)
	}
	acc := p.c.Infinity()
	addend := p
	var err error
	for !k.IsZero() {
		if k.IsOdd() {
			if acc, err = acc.Add(addend); err != nil {
				return Point{}, err
			}
		}
		if k = k.Rsh(1); k.IsZero() {
			break
		}
		if addend, err = addend.Double(); err != nil {
			return Point{}, err
		}
	}
	return acc, nil
}
