package friction

const (
	DefaultA        = 0.011
	DefaultB        = 0.014
	DefaultMuRef    = 0.6
	DefaultVRef     = 1.0
	DefaultK1       = 1e-7
	DefaultTStart   = 0.0
	DefaultTFinal   = 50.0
	DefaultNumSteps = 500
)

// Params holds the constitutive constants and the time grid for one
// evaluation. It is a plain value; configure it once and call Evaluate.
type Params struct {
	A     float64 `json:"a"`      // direct-effect constant
	B     float64 `json:"b"`      // evolution-effect constant
	MuRef float64 `json:"mu_ref"` // reference friction coefficient at VRef
	VRef  float64 `json:"v_ref"`  // reference slip velocity
	K1    float64 `json:"k1"`     // radiation-damping coefficient

	// Dc is the critical slip distance (um), the swept parameter. It is
	// used as a divisor and has no default; zero fails validation.
	Dc float64 `json:"dc"`

	// MuTZero is the friction coefficient at t = TStart. Zero means
	// "use MuRef", which matches the reference start exactly and makes
	// theta hit zero on the second step (see Evaluate).
	MuTZero float64 `json:"mu_t_zero"`

	RadiationDamping bool `json:"radiation_damping"`

	TStart   float64 `json:"t_start"`
	TFinal   float64 `json:"t_final"`
	NumSteps int     `json:"num_steps"`
}

func DefaultParams() Params {
	return Params{
		A:                DefaultA,
		B:                DefaultB,
		MuRef:            DefaultMuRef,
		VRef:             DefaultVRef,
		K1:               DefaultK1,
		RadiationDamping: true,
		TStart:           DefaultTStart,
		TFinal:           DefaultTFinal,
		NumSteps:         DefaultNumSteps,
	}
}

// DeltaT is the fixed step width (TFinal - TStart) / NumSteps.
func (p Params) DeltaT() float64 {
	return (p.TFinal - p.TStart) / float64(p.NumSteps)
}

// Kprime is the effective loading-spring stiffness, inversely
// proportional to the critical slip distance.
func (p Params) Kprime() float64 {
	return stiffnessScale / p.Dc
}

// WithDc returns a copy with the critical slip distance replaced.
func (p Params) WithDc(dc float64) Params {
	p.Dc = dc
	return p
}

// Validate rejects configurations the stepping loop cannot run.
// Failing here is a ConfigError; nothing has been computed yet.
func (p Params) Validate() error {
	if p.Dc == 0 {
		return &ConfigError{Field: "Dc", Reason: "critical slip distance is a divisor and must be nonzero"}
	}
	if p.A == 0 {
		return &ConfigError{Field: "A", Reason: "direct-effect constant is a divisor and must be nonzero"}
	}
	if p.VRef == 0 {
		return &ConfigError{Field: "VRef", Reason: "reference velocity must be nonzero"}
	}
	if p.NumSteps < 2 {
		return &ConfigError{Field: "NumSteps", Reason: "need at least 2 time samples"}
	}
	if p.TFinal <= p.TStart {
		return &ConfigError{Field: "TFinal", Reason: "simulation window must have positive width"}
	}
	return nil
}
