package friction

import (
	"errors"
	"fmt"
)

// Domain errors for model evaluation.
var (
	// ErrNonPhysical indicates a parameter value the friction law cannot accept.
	ErrNonPhysical = errors.New("friction: non-physical parameter")

	// ErrNumericalDomain indicates an arithmetic failure while stepping
	// (log of a non-positive value, division by zero, non-finite result).
	ErrNumericalDomain = errors.New("friction: numerical domain failure")
)

// ConfigError reports a bad parameter before any stepping begins.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("friction: parameter %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrNonPhysical
}

// StepError reports the step index and the offending quantity when the
// stepping loop leaves the numerical domain. The run produces no
// partial results.
type StepError struct {
	Step     int
	Quantity string
	Value    float64
}

func (e *StepError) Error() string {
	return fmt.Sprintf("friction: step %d: %s = %g out of domain", e.Step, e.Quantity, e.Value)
}

func (e *StepError) Unwrap() error {
	return ErrNumericalDomain
}
