package elliptic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/elliptic"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/numtheory"
	"github.com/crypto330/crypto330-go/pkg/poly2"
)

// toyCurve is y² + xy = x³ + x² + 1 over GF(2^7) = GF(2)[x]/(x^7+x+1). It has
// 142 points; G = (3, 85) generates the subgroup of prime order 71.
func toyCurve(t *testing.T) *elliptic.Curve {
	t.Helper()
	c, err := elliptic.NewCurve(
		poly2.FromBits(0, 1, 7),
		poly2.New(1),
		poly2.New(1),
		poly2.New(3),
		poly2.New(85),
		hugeint.New(71),
	)
	require.NoError(t, err)
	return c
}

func pt(c *elliptic.Curve, x, y uint64) elliptic.Point {
	return c.Point(poly2.New(x), poly2.New(y))
}

func TestNewCurveValidation(t *testing.T) {
	mod := poly2.FromBits(0, 1, 7)
	one := poly2.New(1)

	_, err := elliptic.NewCurve(poly2.New(1), one, one, poly2.New(3), poly2.New(85), hugeint.New(71))
	assert.ErrorIs(t, err, crypto330.ErrInvalidParameter)

	_, err = elliptic.NewCurve(mod, one, one, poly2.New(3), poly2.New(85), hugeint.New(1))
	assert.ErrorIs(t, err, crypto330.ErrInvalidParameter)

	_, err = elliptic.NewCurve(mod, one, one, poly2.New(3), poly2.New(84), hugeint.New(71))
	assert.ErrorIs(t, err, crypto330.ErrInvalidParameter)
}

func TestToyCurveSmallMultiples(t *testing.T) {
	c := toyCurve(t)
	g := c.G()

	two, err := g.Double()
	require.NoError(t, err)
	assert.True(t, two.Equal(pt(c, 47, 40)), "2G = %s", two)

	three, err := two.Add(g)
	require.NoError(t, err)
	assert.True(t, three.Equal(pt(c, 31, 12)), "3G = %s", three)

	seventy, err := g.Mul(hugeint.New(70))
	require.NoError(t, err)
	assert.True(t, seventy.Equal(g.Neg()))
	assert.True(t, seventy.Equal(pt(c, 3, 86)))

	order, err := g.Mul(c.N())
	require.NoError(t, err)
	assert.True(t, order.IsInfinity())
}

func TestToyCurveGroupLaws(t *testing.T) {
	c := toyCurve(t)
	g := c.G()
	inf := c.Infinity()

	seen := map[string]bool{}
	acc := inf
	for k := uint64(0); k < 71; k++ {
		viaMul, err := g.Mul(hugeint.New(k))
		require.NoError(t, err)
		require.True(t, viaMul.Equal(acc), "k=%d", k)
		require.True(t, acc.IsOnCurve(), "k=%d", k)
		seen[acc.String()] = true

		sum, err := acc.Add(inf)
		require.NoError(t, err)
		assert.True(t, sum.Equal(acc))
		sum, err = inf.Add(acc)
		require.NoError(t, err)
		assert.True(t, sum.Equal(acc))
		sum, err = acc.Add(acc.Neg())
		require.NoError(t, err)
		assert.True(t, sum.IsInfinity(), "k=%d", k)

		acc, err = acc.Add(g)
		require.NoError(t, err)
	}
	assert.Len(t, seen, 71)
	assert.True(t, acc.IsInfinity())
}

func TestToyCurveScalarDistributes(t *testing.T) {
	c := toyCurve(t)
	g := c.G()
	for a := uint64(1); a < 71; a += 7 {
		for b := uint64(2); b < 71; b += 11 {
			pa, err := g.Mul(hugeint.New(a))
			require.NoError(t, err)
			pb, err := g.Mul(hugeint.New(b))
			require.NoError(t, err)
			sum, err := pa.Add(pb)
			require.NoError(t, err)
			want, err := g.Mul(hugeint.New((a + b) % 71))
			require.NoError(t, err)
			assert.True(t, sum.Equal(want), "%d+%d", a, b)

			sum2, err := pb.Add(pa)
			require.NoError(t, err)
			assert.True(t, sum.Equal(sum2))
		}
	}
}

func TestPointOfOrderTwo(t *testing.T) {
	c := toyCurve(t)
	p := pt(c, 0, 1)
	require.True(t, p.IsOnCurve())
	assert.True(t, p.Neg().Equal(p))

	d, err := p.Double()
	require.NoError(t, err)
	assert.True(t, d.IsInfinity())
}

func TestIncompatibleCurves(t *testing.T) {
	c1, c2 := toyCurve(t), toyCurve(t)
	_, err := c1.G().Add(c2.G())
	assert.ErrorIs(t, err, crypto330.ErrIncompatibleCurve)

	_, err = c1.Infinity().Add(c2.Infinity())
	assert.ErrorIs(t, err, crypto330.ErrIncompatibleCurve)
	assert.False(t, c1.G().Equal(c2.G()))

	var zero elliptic.Point
	_, err = zero.Add(zero)
	assert.ErrorIs(t, err, crypto330.ErrIncompatibleCurve)
	_, err = zero.Mul(hugeint.New(3))
	assert.ErrorIs(t, err, crypto330.ErrIncompatibleCurve)
	assert.False(t, zero.IsOnCurve())
}

func TestOffCurvePointDetected(t *testing.T) {
	c := toyCurve(t)
	assert.False(t, pt(c, 3, 84).IsOnCurve())
	assert.True(t, c.Infinity().IsOnCurve())
	assert.Equal(t, "inf", c.Infinity().String())
}

func TestDSTU4145M307(t *testing.T) {
	c := elliptic.DSTU4145M307()
	require.Same(t, c, elliptic.DSTU4145M307())
	assert.Equal(t, 307, c.Modulus().Degree())
	assert.True(t, c.A().IsOne())
	assert.Equal(t, 306, c.N().BitLen())
	assert.True(t, numtheory.IsProbablePrime(c.N()))
	assert.True(t, c.G().IsOnCurve())
}

func TestDSTU4145M307Operations(t *testing.T) {
	if testing.Short() {
		t.Skip("scalar multiplication on a 307-bit field")
	}
	c := elliptic.DSTU4145M307()
	p, err := c.GeneratePoint(numtheory.NewSource(2024))
	require.NoError(t, err)
	require.True(t, p.IsOnCurve())

	q, err := p.Add(p)
	require.NoError(t, err)
	assert.True(t, q.IsOnCurve())

	r, err := p.Add(q)
	require.NoError(t, err)
	assert.True(t, r.IsOnCurve())

	u, err := r.Mul(hugeint.New(330))
	require.NoError(t, err)
	assert.True(t, u.IsOnCurve())

	v, err := p.Mul(hugeint.New(921))
	require.NoError(t, err)
	w, err := v.Add(u)
	require.NoError(t, err)
	assert.True(t, w.IsOnCurve())

	// 921·P + 330·3P = 1911·P
	want, err := p.Mul(hugeint.New(1911))
	require.NoError(t, err)
	assert.True(t, w.Equal(want))
}

func TestDSTU4145M307Order(t *testing.T) {
	if testing.Short() {
		t.Skip("scalar multiplication on a 307-bit field")
	}
	c := elliptic.DSTU4145M307()
	ng, err := c.G().Mul(c.N())
	require.NoError(t, err)
	assert.True(t, ng.IsInfinity())

	last, err := c.G().Mul(c.N().SubUint64(1))
	require.NoError(t, err)
	assert.True(t, last.Equal(c.G().Neg()))
}
