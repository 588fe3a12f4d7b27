package poly2_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/poly2"
)

// naiveMul multiplies bit by bit through Lsh and Add, without limb-level
// shortcuts.
func naiveMul(a, b poly2.Poly) poly2.Poly {
	var z poly2.Poly
	for i := 0; i < b.BitLen(); i++ {
		if b.Coeff(uint(i)) == 1 {
			z = z.Add(a.Lsh(uint(i)))
		}
	}
	return z
}

func randomPoly(rng *rand.Rand, bits int) poly2.Poly {
	powers := make([]uint, 0, bits)
	for i := 0; i < bits; i++ {
		if rng.IntN(2) == 1 {
			powers = append(powers, uint(i))
		}
	}
	return poly2.FromBits(powers...)
}

func TestOneTimesOne(t *testing.T) {
	one := poly2.MustFromHex("1")
	assert.True(t, one.Mul(one).Equal(poly2.MustFromHex("1")))
	assert.True(t, one.IsOne())
}

func TestSmallProducts(t *testing.T) {
	// (x+1)^2 = x^2+1
	assert.Equal(t, "5", poly2.New(3).Mul(poly2.New(3)).Hex())
	// (x^2+x+1)(x+1) = x^3+1
	assert.Equal(t, "9", poly2.New(7).Mul(poly2.New(3)).Hex())
	// x^31 * x^31 crosses a limb boundary
	assert.Equal(t, 63, poly2.FromBits(31).Mul(poly2.FromBits(31)).Degree())
	assert.True(t, poly2.New(0xffffffff).Mul(poly2.Poly{}).IsZero())
}

func TestAddIsSelfInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 50; i++ {
		a, b := randomPoly(rng, 1+rng.IntN(300)), randomPoly(rng, 1+rng.IntN(300))
		assert.True(t, a.Add(b).Add(b).Equal(a))
		assert.True(t, a.Sub(a).IsZero())
		assert.True(t, a.Add(b).Equal(b.Add(a)))
	}
}

func TestMulMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 3))
	for i := 0; i < 60; i++ {
		a, b := randomPoly(rng, 1+rng.IntN(200)), randomPoly(rng, 1+rng.IntN(200))
		require.True(t, a.Mul(b).Equal(naiveMul(a, b)), "%s * %s", a, b)
		require.True(t, a.Mul(b).Equal(b.Mul(a)))
	}
}

func TestDivisionIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 5))
	for i := 0; i < 100; i++ {
		a := randomPoly(rng, 1+rng.IntN(600))
		d := randomPoly(rng, 1+rng.IntN(310))
		if d.IsZero() {
			continue
		}
		q, r, err := a.DivMod(d)
		require.NoError(t, err)
		require.Less(t, r.Degree(), d.Degree())
		require.True(t, q.Mul(d).Add(r).Equal(a))
	}
}

func TestDivideByZero(t *testing.T) {
	_, _, err := poly2.New(5).DivMod(poly2.Poly{})
	assert.ErrorIs(t, err, crypto330.ErrDivideByZero)
	_, err = poly2.New(5).Mod(poly2.New(0))
	assert.ErrorIs(t, err, crypto330.ErrDivideByZero)
}

func TestFromBitsAndConversions(t *testing.T) {
	f := poly2.FromBits(0, 2, 4, 8, 307)
	assert.Equal(t, 307, f.Degree())
	assert.Equal(t, uint(1), f.Coeff(8))
	assert.Equal(t, uint(0), f.Coeff(9))
	assert.True(t, poly2.FromBits(3, 3).IsZero())
	assert.Equal(t, -1, poly2.Poly{}.Degree())

	u := f.Uint()
	assert.Equal(t, 308, u.BitLen())
	assert.True(t, poly2.FromUint(u).Equal(f))
	assert.True(t, poly2.FromUint(hugeint.New(255)).Equal(poly2.MustFromHex("ff")))

	_, err := poly2.FromHex("0xZ")
	assert.ErrorIs(t, err, crypto330.ErrParse)
}

func TestMulModStaysReduced(t *testing.T) {
	f := poly2.FromBits(0, 2, 4, 8, 307)
	rng := rand.New(rand.NewPCG(6, 7))
	for i := 0; i < 20; i++ {
		a, b := randomPoly(rng, 307), randomPoly(rng, 307)
		c, err := a.MulMod(b, f)
		require.NoError(t, err)
		assert.Less(t, c.Degree(), 307)
		s, err := a.SquareMod(f)
		require.NoError(t, err)
		aa, err := a.MulMod(a, f)
		require.NoError(t, err)
		assert.True(t, s.Equal(aa))
	}
}
