package hugeint_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"0", "0"},
		{"000123", "123"},
		{"4294967296", "4294967296"},
		{"1000000000", "1000000000"},
		{"18446744073709551616", "18446744073709551616"},
		{"11111111111111111111111", "11111111111111111111111"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			x, err := hugeint.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, x.String())
		})
	}
}

func TestParseRejectsNonDigits(t *testing.T) {
	for _, in := range []string{"12a", "-5", " 1", "1.0", "0x10"} {
		_, err := hugeint.Parse(in)
		assert.ErrorIs(t, err, crypto330.ErrParse, in)
	}
	assert.Panics(t, func() { hugeint.MustParse("nope") })
}

func TestHex(t *testing.T) {
	x, err := hugeint.FromHex("ff")
	require.NoError(t, err)
	assert.True(t, x.Equal(hugeint.New(255)))

	x, err = hugeint.FromHex("0x3FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC079C2F3825DA70D390FBBA588D4604022B7B7")
	require.NoError(t, err)
	assert.Equal(t, 306, x.BitLen())
	assert.Equal(t, "3ffffffffffffffffffffffffffffffffffffffc079c2f3825da70d390fbba588d4604022b7b7", x.Hex())

	_, err = hugeint.FromHex("xyz")
	assert.ErrorIs(t, err, crypto330.ErrParse)
	assert.Equal(t, "0", hugeint.New(0).Hex())
}

func TestByteRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 100; i++ {
		x := randomUint(rng, 1+rng.IntN(20))
		assert.True(t, hugeint.FromBytes(x.Bytes()).Equal(x))
		assert.True(t, hugeint.FromLimbBytes(x.LimbBytes()).Equal(x))
		y, err := hugeint.FromHex(x.Hex())
		require.NoError(t, err)
		assert.True(t, y.Equal(x))
		z, err := hugeint.Parse(x.String())
		require.NoError(t, err)
		assert.True(t, z.Equal(x))
	}
}

func TestLimbBytesLayout(t *testing.T) {
	x := hugeint.New(0x0102030405)
	assert.Equal(t, []byte{0x05, 0x04, 0x03, 0x02, 0x01, 0, 0, 0}, x.LimbBytes())
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, x.Bytes())

	padded := append(x.LimbBytes(), 0, 0, 0, 0, 0)
	assert.True(t, hugeint.FromLimbBytes(padded).Equal(x))
	assert.True(t, hugeint.FromLimbBytes(nil).IsZero())
	assert.Empty(t, hugeint.New(0).Bytes())
}

// TestAgainstDecimal cross-checks products and quotients of long decimal
// numbers with shopspring/decimal.
func TestAgainstDecimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 17))
	digits := func(n int) string {
		var sb strings.Builder
		sb.WriteByte(byte('1' + rng.IntN(9)))
		for i := 1; i < n; i++ {
			sb.WriteByte(byte('0' + rng.IntN(10)))
		}
		return sb.String()
	}
	for i := 0; i < 50; i++ {
		as, bs := digits(20+rng.IntN(60)), digits(5+rng.IntN(30))
		a, b := hugeint.MustParse(as), hugeint.MustParse(bs)
		da, db := decimal.RequireFromString(as), decimal.RequireFromString(bs)

		assert.Equal(t, da.Mul(db).String(), a.Mul(b).String())
		assert.Equal(t, da.Add(db).String(), a.Add(b).String())

		q, r, err := a.DivMod(b)
		require.NoError(t, err)
		dq, dr := da.QuoRem(db, 0)
		assert.Equal(t, dq.String(), q.String(), "%s / %s", as, bs)
		assert.Equal(t, dr.String(), r.String(), "%s %% %s", as, bs)
	}
}
