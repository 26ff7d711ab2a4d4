package friction

import "math"

// External loading: V_l = VRef * (1 + exp(-t/loadingDecayTime) * sin(loadingFreq*t)),
// a transient velocity perturbation that decays while it oscillates.
const (
	loadingDecayTime = 20.0
	loadingFreq      = 10.0
	stiffnessScale   = 0.1 // Kprime = stiffnessScale / Dc
)

// Series holds the five state series of one run, indexed consistently
// over [0, NumSteps).
type Series struct {
	Time  []float64
	Mu    []float64
	Theta []float64

	// Velocity[0] is the slip velocity VRef; for k >= 1 it stores the
	// velocity-rate dv of step k, not the slip velocity itself. The
	// finite difference feeding Acc therefore differentiates a rate.
	// This matches the reference trace and is kept deliberately.
	Velocity []float64

	Acc      []float64
	AccNoise []float64
}

// Len is the number of time samples.
func (s *Series) Len() int { return len(s.Time) }

// Point is one (time, acceleration) sample for line plotting.
type Point struct {
	T   float64
	Acc float64
}

// Points returns the (t, acc) pairs consumed by the plotting layer.
func (s *Series) Points() []Point {
	pts := make([]Point, len(s.Time))
	for i := range pts {
		pts[i] = Point{T: s.Time[i], Acc: s.Acc[i]}
	}
	return pts
}

// Evaluate advances the coupled friction state (mu, theta, velocity)
// over the configured grid and derives the acceleration signal plus a
// noise-perturbed variant. A nil noise source disables noise.
//
// The scheme at step k, using only step k-1 values:
//
//	v        = VRef * exp((mu - MuRef - B*ln(VRef*theta/Dc)) / A)   (law inverted for velocity)
//	theta[k] = 1 - v*theta[k-1]/Dc                                  (direct update, not an Euler step)
//	dmu      = Kprime * (V_l - v)
//	dv       = (v/A) * (dmu - (B/theta[k-1])*theta[k])
//
// With radiation damping enabled, dmu is corrected by -K1*dv and dv is
// recomputed against the corrected dmu; the second pass changes the
// trajectory and must not be skipped. Only mu is integrated forward.
//
// Any step that leaves the numerical domain (theta[k-1] <= 0, or a
// non-finite intermediate) aborts the whole run with a StepError.
func (p Params) Evaluate(noise Noise) (*Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if noise == nil {
		noise = ZeroNoise
	}

	n := p.NumSteps
	dt := p.DeltaT()
	kprime := p.Kprime()

	s := &Series{
		Time:     make([]float64, n),
		Mu:       make([]float64, n),
		Theta:    make([]float64, n),
		Velocity: make([]float64, n),
		Acc:      make([]float64, n),
		AccNoise: make([]float64, n),
	}

	mu0 := p.MuTZero
	if mu0 == 0 {
		mu0 = p.MuRef
	}
	s.Time[0] = p.TStart
	s.Mu[0] = mu0
	s.Theta[0] = p.Dc / p.VRef
	s.Velocity[0] = p.VRef

	for k := 1; k < n; k++ {
		thetaPrev := s.Theta[k-1]
		if thetaPrev <= 0 {
			return nil, &StepError{Step: k, Quantity: "theta", Value: thetaPrev}
		}

		v := p.VRef * math.Exp((s.Mu[k-1]-p.MuRef-p.B*math.Log(p.VRef*thetaPrev/p.Dc))/p.A)

		s.Theta[k] = 1 - v*thetaPrev/p.Dc

		tPrev := s.Time[k-1]
		vl := p.VRef * (1 + math.Exp(-tPrev/loadingDecayTime)*math.Sin(loadingFreq*tPrev))

		dmu := kprime * (vl - v)
		dv := (v / p.A) * (dmu - (p.B/thetaPrev)*s.Theta[k])
		if p.RadiationDamping {
			dmu -= p.K1 * dv
			dv = (v / p.A) * (dmu - (p.B/thetaPrev)*s.Theta[k])
		}

		s.Mu[k] = s.Mu[k-1] + dt*dmu
		s.Velocity[k] = dv
		s.Acc[k] = (s.Velocity[k] - s.Velocity[k-1]) / dt
		s.AccNoise[k] = s.Acc[k] + math.Abs(s.Acc[k])*noise()
		s.Time[k] = s.Time[k-1] + dt

		if err := checkFinite(k, "slip velocity", v); err != nil {
			return nil, err
		}
		for _, q := range []struct {
			name string
			val  float64
		}{
			{"theta", s.Theta[k]},
			{"mu", s.Mu[k]},
			{"velocity", s.Velocity[k]},
			{"acc", s.Acc[k]},
		} {
			if err := checkFinite(k, q.name, q.val); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

func checkFinite(step int, quantity string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &StepError{Step: step, Quantity: quantity, Value: v}
	}
	return nil
}
