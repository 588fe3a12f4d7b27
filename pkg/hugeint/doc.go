// Package hugeint implements unsigned arbitrary-precision integers.
//
// A Uint is a canonical sequence of 32-bit limbs, least significant first.
// Arithmetic is schoolbook: O(n·m) multiplication with carry propagation and
// normalized long division that estimates each quotient limb from the top two
// limbs of the running remainder and corrects it at most twice.
//
// Uint never goes negative. Sub saturates at zero:
//
//	hugeint.New(3).Sub(hugeint.New(5)) // == 0
//
// Division returns an error instead of panicking:
//
//	q, r, err := a.DivMod(b)
//	if errors.Is(err, crypto330.ErrDivideByZero) {
//	    ...
//	}
//
// Two byte encodings are provided. Bytes/FromBytes use minimal big-endian
// like math/big. LimbBytes/FromLimbBytes write each limb as 4 little-endian
// bytes, least significant limb first; appending zero bytes to such an
// encoding does not change its value, which the RSA padding relies on.
package hugeint
