package layout

import "math/rand"

// Rand is the randomness source the optimizer draws from. Injected so tests
// can script the exact search trajectory.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
