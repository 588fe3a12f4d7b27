// Package elliptic implements the group of points on a binary elliptic curve
//
//	y² + xy = x³ + Ax² + B
//
// over GF(2^m), with field elements represented as poly2.Poly values reduced
// modulo an irreducible polynomial.
//
// A Curve is immutable once built and is shared by pointer. Every Point keeps
// a reference to the Curve it was made on; combining points from two Curve
// values fails with crypto330.ErrIncompatibleCurve even when the parameters
// happen to match.
//
// Field inversions use the extended Euclidean algorithm from numtheory, so
// the package is neither constant time nor fast. It is intended for
// experimentation and test vectors.
package elliptic
