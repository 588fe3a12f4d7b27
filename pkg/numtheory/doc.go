// Package numtheory builds the number-theoretic layer on top of hugeint and
// poly2: modular inverses by extended Euclid, modular exponentiation, gcd,
// Miller-Rabin primality testing and ranged random sampling.
//
// The extended Euclidean algorithm runs on unsigned magnitudes and tracks
// the sign of each Bézout coefficient separately. Unlike the textbook
// version it checks the gcd and reports crypto330.ErrInvalidInverse for
// operands that are not coprime.
//
// Randomness comes from a caller-supplied Source. NewSource wraps a seeded
// PCG generator; it is reproducible and not suitable for secrets. By default
// the primality test seeds its witnesses from the candidate:
//
//	numtheory.IsProbablePrime(n) // witnesses derived from n.Uint64()
//
//	hardened := numtheory.PrimeTester{
//	    Rounds: 32,
//	    Seed: func(hugeint.Uint) numtheory.Source {
//	        return rand.NewChaCha8(freshSeed())
//	    },
//	}
//	hardened.IsProbablePrime(n)
package numtheory
