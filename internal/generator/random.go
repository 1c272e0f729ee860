package generator

import "math/rand/v2"

// RandomSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource returns the unseeded, goroutine-safe top-level math/rand/v2 source.
func DefaultSource() RandomSource {
	return defaultSource{}
}

// NewSeededSource returns a deterministic source. The same seed always
// produces the same sequence. The returned source is not safe for
// concurrent use.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
