package elliptic

import (
	"sync"

	"github.com/crypto330/crypto330-go/pkg/hugeint"
	"github.com/crypto330/crypto330-go/pkg/poly2"
)

// DSTU 4145 curve over GF(2^307) with field polynomial x^307 + x^8 + x^4 + x^2 + 1.
const (
	dstu307B  = "393C7F7D53666B5054B5E6C6D3DE94F4296C0C599E2E2E241050DF18B6090BDC90186904968BB"
	dstu307GX = "216EE8B189D291A0224984C1E92F1D16BF75CCD825A087A239B276D3167743C52C02D6E7232AA"
	dstu307GY = "5D9306BACD22B7FAEB09D2E049C6E2866C5D1677762A8F2F2DC9A11C7F7BE8340AB2237C7F2A0"
	dstu307N  = "3FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC079C2F3825DA70D390FBBA588D4604022B7B7"
)

var dstu4145M307 = sync.OnceValue(func() *Curve {
	c, err := NewCurve(
		poly2.FromBits(0, 2, 4, 8, 307),
		poly2.New(1),
		poly2.MustFromHex(dstu307B),
		poly2.MustFromHex(dstu307GX),
		poly2.MustFromHex(dstu307GY),
		hugeint.MustFromHex(dstu307N),
	)
	if err != nil {
		panic(err)
	}
	return c
})

// DSTU4145M307 returns the DSTU 4145 curve with m = 307, A = 1. The same
// *Curve is returned on every call, so points from separate calls combine.
func DSTU4145M307() *Curve {
	return dstu4145M307()
}
