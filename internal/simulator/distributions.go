package simulator

import (
	"math"
	"math/rand"
	"time"
)

// thinkTime draws the pause before a viewer's next action: exponential
// around mean, never shorter than a tenth of it.
func thinkTime(rng *rand.Rand, mean time.Duration) time.Duration {
	if mean <= 0 {
		return 0
	}
	d := time.Duration(rng.ExpFloat64() * float64(mean))
	if floor := mean / 10; d < floor {
		return floor
	}
	return d
}

// normalizedRate draws from a normal distribution and clamps to [min, max].
func normalizedRate(rng *rand.Rand, mean, std, min, max float64) float64 {
	// Box-Muller transform
	u1 := rng.Float64()
	u2 := rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return math.Max(min, math.Min(max, mean+z*std))
}

// chance reports true with probability p.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
