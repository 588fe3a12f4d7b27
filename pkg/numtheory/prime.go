package numtheory

import (
	"github.com/crypto330/crypto330-go/pkg/crypto330"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
)

var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109,
}

// SeedFunc picks the witness source for a primality test of candidate.
type SeedFunc func(candidate hugeint.Uint) Source

// CandidateSeed seeds the witness source from the low 64 bits of the
// candidate itself. Witnesses are therefore predictable from the candidate;
// supply a different SeedFunc to PrimeTester where that matters.
func CandidateSeed(candidate hugeint.Uint) Source {
	return NewSource(candidate.Uint64())
}

// PrimeTester runs trial division followed by Miller-Rabin.
//
// The zero value uses crypto330.DefaultPrimalityRounds rounds and
// CandidateSeed.
type PrimeTester struct {
	Rounds int
	Seed   SeedFunc
}

// IsProbablePrime runs the default PrimeTester.
func IsProbablePrime(n hugeint.Uint) bool {
	return PrimeTester{}.IsProbablePrime(n)
}

// IsProbablePrime reports whether n is probably prime. A false result is
// certain; a true result is wrong with probability at most 4^-Rounds.
func (t PrimeTester) IsProbablePrime(n hugeint.Uint) bool {
	if n.Less(hugeint.New(2)) {
		return false
	}
	if !n.IsOdd() && !n.EqualUint64(2) {
		return false
	}
	for _, p := range smallPrimes {
		if r, _ := n.ModUint64(p); r == 0 {
			return n.EqualUint64(p)
		}
	}

	// n-1 = d·2^r with d odd
	nMinus1 := n.SubUint64(1)
	d := nMinus1
	var r int
	for !d.IsOdd() {
		d = d.Rsh(1)
		r++
	}

	rounds := t.Rounds
	if rounds <= 0 {
		rounds = crypto330.DefaultPrimalityRounds
	}
	seed := t.Seed
	if seed == nil {
		seed = CandidateSeed
	}
	src := seed(n)
	lo, hi := hugeint.New(2), n.SubUint64(2)

	for round := 0; round < rounds; round++ {
		a := RandRange(lo, hi, src)
		x, _ := PowMod(a, d, n) // n > 109
		if x.EqualUint64(1) || x.Equal(nMinus1) {
			continue
		}
		composite := true
		for i := 1; i < r; i++ {
			x = mustMod(x.Mul(x), n)
			if x.Equal(nMinus1) {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}
