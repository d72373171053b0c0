package problemgen

import "math/rand/v2"

// Rand is the randomness the generator consumes. *rand.Rand from
// math/rand/v2 satisfies it; tests inject seeded or scripted sources.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int

	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// NewSeededRand returns a deterministic PCG source for seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newRandomRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// between returns a uniform int in [lo, hi].
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func pick(r Rand, xs []int) int {
	return xs[r.IntN(len(xs))]
}

func chance(r Rand, p float64) bool {
	return r.Float64() < p
}
