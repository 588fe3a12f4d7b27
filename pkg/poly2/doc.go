// Package poly2 implements polynomials over GF(2) on the limb layout used by
// hugeint.
//
// The two types share storage but not arithmetic: Poly adds with XOR,
// multiplies without carries and divides by aligning leading terms. Reducing
// modulo an irreducible polynomial turns Poly into an element of GF(2^m),
// which is how the elliptic package uses it:
//
//	f := poly2.FromBits(0, 2, 4, 8, 307) // x^307 + x^8 + x^4 + x^2 + 1
//	c, err := a.MulMod(b, f)
package poly2
