// Package crypto330 holds the pieces shared by every crypto330-go package:
// the sentinel errors, the *Error wrapper, the Config accepted by the key
// generation and signing helpers, and the build version.
//
// The arithmetic lives in subpackages:
//
//   - hugeint: unsigned arbitrary-precision integers
//   - poly2: polynomials over GF(2) on the same limb layout
//   - numtheory: inverses, modular exponentiation, primality, random sampling
//   - elliptic: binary-field curves y² + xy = x³ + Ax² + B
//   - ecsign: ECDSA-style signatures on those curves
//   - rsa: textbook RSA with CRT decryption and block OAEP padding
//
// Errors from every package match the sentinels here with errors.Is:
//
//	if _, err := hugeint.Parse("12a"); errors.Is(err, crypto330.ErrParse) {
//	    ...
//	}
//
// None of the arithmetic is constant time and the random sources are not
// cryptographically secure. The toolkit is for study, not for protecting data.
package crypto330
