// Package optim studies how a method's error responds to the step size.
package optim

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/experiment"
)

// Point is the outcome of one solve in a sweep.
type Point struct {
	H           float64
	Steps       int
	Evaluations int
	Result      float64
	Error       float64
}

type Sweep struct {
	Method string
	Points []Point
}

// StepSweep solves one method at several step sizes over the same interval.
type StepSweep struct {
	hs []float64
}

func NewStepSweep(hs []float64) *StepSweep {
	return &StepSweep{hs: hs}
}

// Halving returns n step sizes starting at h, each half the previous one.
func Halving(h float64, n int) []float64 {
	hs := make([]float64, n)
	for i := range hs {
		hs[i] = h
		h /= 2
	}
	return hs
}

// Run solves base.Methods[0] once per step size. Solves are independent and
// run concurrently; the returned points are ordered by decreasing h. Error is
// the maximum absolute error over the trajectory, so the problem must have a
// closed form.
func (s *StepSweep) Run(ctx context.Context, base experiment.Config, registry *experiment.Registry) (*Sweep, error) {
	if len(s.hs) == 0 {
		return nil, fmt.Errorf("%w: no step sizes", dynamo.ErrInvalidInput)
	}
	if len(base.Methods) != 1 {
		return nil, fmt.Errorf("%w: sweep needs exactly one method", dynamo.ErrInvalidInput)
	}
	base.Observer = nil

	points := make([]Point, len(s.hs))
	errs := make([]error, len(s.hs))
	var name string
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i, h := range s.hs {
		wg.Add(1)
		go func(idx int, h float64) {
			defer wg.Done()

			cfg := base
			cfg.Params.H = h
			exp, err := experiment.New(cfg, registry)
			if err != nil {
				errs[idx] = err
				return
			}
			if exp.Exact() == nil {
				errs[idx] = fmt.Errorf("%s: %w", exp.Problem().Equation, dynamo.ErrNoExact)
				return
			}

			solved, err := exp.Run(ctx)
			if err != nil {
				errs[idx] = err
				return
			}
			m := solved[0]

			result, err := m.Result()
			if err != nil {
				errs[idx] = err
				return
			}
			maxErr, err := m.MaxError()
			if err != nil {
				errs[idx] = err
				return
			}

			mu.Lock()
			name = m.Name()
			mu.Unlock()

			st := m.Stats()
			points[idx] = Point{
				H:           h,
				Steps:       st.Steps,
				Evaluations: st.Evaluations,
				Result:      result,
				Error:       maxErr,
			}
		}(i, h)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return math.Abs(points[i].H) > math.Abs(points[j].H)
	})
	return &Sweep{Method: name, Points: points}, nil
}

// ObservedOrder is the least-squares slope of log(error) against log(h).
// Points with zero error are ignored; fewer than two usable points give NaN.
func (s *Sweep) ObservedOrder() float64 {
	var xs, ys []float64
	for _, p := range s.Points {
		if p.Error <= 0 || p.H == 0 {
			continue
		}
		xs = append(xs, math.Log(math.Abs(p.H)))
		ys = append(ys, math.Log(p.Error))
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))

	var num, den float64
	for i := range xs {
		num += (xs[i] - mx) * (ys[i] - my)
		den += (xs[i] - mx) * (xs[i] - mx)
	}
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// Coarsest returns the largest step whose error is within tol.
func (s *Sweep) Coarsest(tol float64) (Point, bool) {
	for _, p := range s.Points {
		if p.Error <= tol {
			return p, true
		}
	}
	return Point{}, false
}
