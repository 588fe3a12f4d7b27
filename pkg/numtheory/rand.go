package numtheory

import (
	"math/rand/v2"

	"github.com/crypto330/crypto330-go/internal/limbs"
	"github.com/crypto330/crypto330-go/pkg/hugeint"
)

// Source is a stream of uniformly distributed 64-bit values. Every
// math/rand/v2 Source satisfies it.
//
// Sources are not safe for concurrent use; give each goroutine its own.
type Source interface {
	Uint64() uint64
}

// extraLimbs is how many limbs beyond the size of the range Rand draws before
// reducing, which keeps the modulo bias small.
const extraLimbs = 8

// NewSource returns a deterministic, seedable, non-cryptographic source.
func NewSource(seed uint64) Source {
	return rand.NewPCG(seed, seed)
}

// Rand returns a value in [0, hi].
//
// It draws LimbLen(hi)+8 limbs, each uniform in [1, 2^32-1], and reduces the
// result modulo hi+1. Excluding zero limbs is a small representational bias
// that is kept for reproducibility.
func Rand(hi hugeint.Uint, src Source) hugeint.Uint {
	r := rand.New(src)
	d := make([]uint32, hi.LimbLen()+extraLimbs)
	for i := range d {
		d[i] = r.Uint32N(limbs.Max) + 1
	}
	return mustMod(hugeint.FromLimbs(d), hi.AddUint64(1))
}

// RandRange returns a value in [lo, hi]. If hi < lo the range collapses to
// lo.
func RandRange(lo, hi hugeint.Uint, src Source) hugeint.Uint {
	return Rand(hi.Sub(lo), src).Add(lo)
}
