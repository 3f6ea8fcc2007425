package integrators

import (
	"fmt"

	"github.com/san-kum/odestep/internal/dynamo"
)

// bootstrapSteps is how many RK4 steps seed the four-point history.
const bootstrapSteps = 3

// AdamsBashforth is the explicit four-step Adams-Bashforth method. The first
// three steps come from an internal RK4 run over [x0, x0+3h].
type AdamsBashforth struct {
	base
}

func NewAdamsBashforth(opts ...Option) *AdamsBashforth {
	return &AdamsBashforth{base: newBase(dynamo.Info{
		Key:    "adams_bashforth",
		Name:   "Adams-Bashforth Method",
		Order:  4,
		Stages: 1,
	}, opts)}
}

func (a *AdamsBashforth) Solve() error {
	if err := a.begin(); err != nil {
		return err
	}

	if err := a.bootstrap(); err != nil {
		return err
	}
	if a.steps <= bootstrapSteps {
		a.finish()
		return nil
	}

	h := a.params.H
	n := len(a.traj)

	// f_0..f_3, oldest first
	var window [4]float64
	for j := 0; j < 4; j++ {
		p := a.traj[n-4+j]
		window[j] = a.f(p.X, p.Y)
	}

	last := a.traj[n-1]
	x, y := last.X, last.Y

	for i := bootstrapSteps + 1; i <= a.steps; i++ {
		y = dynamo.Round4(y + h*(55.0*window[3]-59.0*window[2]+37.0*window[1]-9.0*window[0])/24.0)
		x += h

		a.push(x, y)

		copy(window[:3], window[1:])
		window[3] = a.f(x, y)

		a.emit(i, x, y, false)
	}

	a.finish()
	return nil
}

// bootstrap replaces the seed-only trajectory with an RK4 run over the first
// min(3, steps) steps. The RK4 seed is the same (x0, y0) point, so the splice
// neither duplicates nor drops it.
func (a *AdamsBashforth) bootstrap() error {
	n := min(bootstrapSteps, a.steps)

	p := a.params
	p.XTarget = p.X0 + float64(n)*p.H

	rk4 := NewRK4(WithFunc(a.fn))
	if err := rk4.Configure(p); err != nil {
		return fmt.Errorf("rk4 bootstrap: %w", err)
	}
	if err := rk4.Solve(); err != nil {
		return fmt.Errorf("rk4 bootstrap: %w", err)
	}

	seed := rk4.Trajectory()
	a.traj = append(a.traj[:0], seed...)
	a.evals += rk4.Stats().Evaluations

	for i := 1; i < len(seed); i++ {
		a.emit(i, seed[i].X, seed[i].Y, true)
	}
	return nil
}
