// Package sweep evaluates one friction model per critical-slip-distance
// value, each run with its own seeded noise source.
package sweep

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/san-kum/faultslip/internal/friction"
)

// Run is the outcome for one critical slip distance.
type Run struct {
	Dc     float64
	Seed   int64
	Series *friction.Series
}

// DcRange returns n evenly spaced values from low to high inclusive.
func DcRange(low, high float64, n int) []float64 {
	if n <= 1 {
		return []float64{low}
	}
	step := (high - low) / float64(n-1)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = low + float64(i)*step
	}
	return vals
}

// Sweep drives a family of evaluations over a Dc list. Run i draws its
// noise from a generator seeded with seedStart + i, so results are
// reproducible for a fixed seed and runs never share a generator.
type Sweep struct {
	base      friction.Params
	seedStart int64
}

func New(base friction.Params, seedStart int64) *Sweep {
	return &Sweep{base: base, seedStart: seedStart}
}

// Run evaluates sequentially, results ordered as the input.
func (s *Sweep) Run(ctx context.Context, dcs []float64) ([]Run, error) {
	runs := make([]Run, len(dcs))
	for i, dc := range dcs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		r, err := s.evaluate(i, dc)
		if err != nil {
			return nil, err
		}
		runs[i] = r
	}
	return runs, nil
}

// RunParallel evaluates every Dc in its own goroutine. Seeding is the
// same as Run, so the two produce identical results.
func (s *Sweep) RunParallel(ctx context.Context, dcs []float64) ([]Run, error) {
	runs := make([]Run, len(dcs))
	errs := make([]error, len(dcs))

	var wg sync.WaitGroup
	for i, dc := range dcs {
		wg.Add(1)
		go func(idx int, dc float64) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			runs[idx], errs[idx] = s.evaluate(idx, dc)
		}(i, dc)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Sweep) evaluate(idx int, dc float64) (Run, error) {
	seed := s.seedStart + int64(idx)
	p := s.base.WithDc(dc)

	series, err := p.Evaluate(friction.GaussianNoise(rand.New(rand.NewSource(seed))))
	if err != nil {
		return Run{}, fmt.Errorf("dc=%g: %w", dc, err)
	}
	return Run{Dc: dc, Seed: seed, Series: series}, nil
}
