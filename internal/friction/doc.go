// Package friction implements a rate-and-state fault friction model
// advanced by a fixed-step explicit finite-difference scheme.
//
// The package produces synthetic acceleration time series for a given
// critical slip distance:
//
//   - [Params]: constitutive constants and the time-stepping grid
//   - [Series]: the five state series produced by one evaluation
//   - [Noise]: injectable measurement-noise source
//
// # Example
//
//	p := friction.DefaultParams()
//	p.Dc = 100
//	p.MuTZero = 0.55
//	rng := rand.New(rand.NewSource(seed))
//	s, err := p.Evaluate(friction.GaussianNoise(rng))
//
// # Thread Safety
//
// Evaluate is a pure sequential loop and Params is a value type, so
// concurrent evaluations are safe as long as each call gets its own
// noise source. Sharing one generator across goroutines correlates the
// noise draws between runs.
package friction
