package slot

import "math/rand/v2"

// Source is the random source the sampler draws from.
// IntN returns a uniformly distributed integer in [0, n) for n > 0.
// *rand.Rand from math/rand/v2 satisfies it directly.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source seeded with seed.
// Equal seeds produce equal sequences, which is what makes grids reproducible.
func NewSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
