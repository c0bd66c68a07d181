package kernel

import "math/rand/v2"

// RandomSource is the randomness used by estimates and the progress simulation.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewSystemRandom returns a RandomSource backed by the math/rand/v2 global generator.
func NewSystemRandom() RandomSource {
	return systemRandom{}
}

type systemRandom struct{}

func (systemRandom) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // simulation only
}

func (systemRandom) Float64() float64 {
	return rand.Float64() //nolint:gosec // simulation only
}

// RandomIntBetween returns a uniformly distributed integer in [lo, hi].
func RandomIntBetween(r RandomSource, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// RandomFloatBetween returns a uniformly distributed float in [lo, hi).
func RandomFloatBetween(r RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
