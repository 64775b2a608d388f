// Package rng provides the seedable pseudo-random source used for mine placement.
package rng

const (
	// divisor and modulus pick the middle digits of the squared seed.
	divisor = 100_000
	modulus = 10_000_000_000
)

// Source is a middle-square style generator. It is deterministic and not
// suitable for anything beyond shuffling mines.
//
// A seed of 0 is absorbing: every following value is 0.
type Source struct {
	seed uint32
}

// New creates a source starting from seed.
func New(seed uint32) *Source {
	return &Source{seed: seed}
}

// Next advances the generator and returns the new state.
func (s *Source) Next() uint32 {
	product := uint64(s.seed) * uint64(s.seed)
	product /= divisor
	product %= modulus
	s.seed = uint32(product)
	return s.seed
}

// Seed returns the current state without advancing it.
func (s *Source) Seed() uint32 {
	return s.seed
}
