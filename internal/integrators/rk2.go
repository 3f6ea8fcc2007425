package integrators

import "github.com/san-kum/odestep/internal/dynamo"

// RK2 is the two-stage Runge-Kutta method with slopes at both ends of the step.
type RK2 struct {
	base
}

func NewRK2(opts ...Option) *RK2 {
	return &RK2{base: newBase(dynamo.Info{
		Key:    "rk2",
		Name:   "2nd Order Runge-Kutta Method",
		Order:  2,
		Stages: 2,
	}, opts)}
}

func (r *RK2) Solve() error {
	if err := r.begin(); err != nil {
		return err
	}

	x, y := r.params.X0, r.params.Y0
	h := r.params.H

	for i := 0; i < r.steps; i++ {
		k1 := h * r.f(x, y)
		k2 := h * r.f(x+h, y+k1)
		delta := dynamo.Round4(0.5 * (k1 + k2))

		x += h
		y = dynamo.Round4(y + delta)

		r.push(x, y)
		r.emit(i+1, x, y, false,
			dynamo.Term{Name: "k1", Value: dynamo.Round4(k1)},
			dynamo.Term{Name: "k2", Value: dynamo.Round4(k2)},
			dynamo.Term{Name: "delta k", Value: delta},
		)
	}

	r.finish()
	return nil
}
