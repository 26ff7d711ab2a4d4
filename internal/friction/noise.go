package friction

import "math/rand"

// Noise draws one sample of unit-scale measurement noise. Evaluate
// calls it once per step; the draw scales multiplicatively with the
// magnitude of the clean acceleration.
type Noise func() float64

// GaussianNoise adapts rng into a zero-mean unit-variance source.
// Give every Evaluate call its own generator.
func GaussianNoise(rng *rand.Rand) Noise {
	return rng.NormFloat64
}

// ZeroNoise makes the noisy series identical to the clean one.
func ZeroNoise() float64 { return 0 }
