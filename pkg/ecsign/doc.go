// Package ecsign implements an ECDSA-style signature scheme over the binary
// curves of package elliptic.
//
// Messages are integers. The scheme does not hash them; callers hash and
// reduce their input before signing. A signature (r, s) is
//
//	r = x(k·G) mod n
//	s = k⁻¹·(m + x·r) mod n
//
// for a nonce k drawn from the caller's numtheory.Source. The nonce quality
// is exactly that of the source, so a seeded source yields reproducible and
// therefore unsafe signatures.
package ecsign
