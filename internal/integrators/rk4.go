package integrators

import "github.com/san-kum/odestep/internal/dynamo"

type RK4 struct {
	base
}

func NewRK4(opts ...Option) *RK4 {
	return &RK4{base: newBase(dynamo.Info{
		Key:    "rk4",
		Name:   "4th Order Runge-Kutta Method",
		Order:  4,
		Stages: 4,
	}, opts)}
}

func (r *RK4) Solve() error {
	if err := r.begin(); err != nil {
		return err
	}

	x, y := r.params.X0, r.params.Y0
	h := r.params.H

	for i := 0; i < r.steps; i++ {
		k1 := h * r.f(x, y)
		k2 := h * r.f(x+0.5*h, y+0.5*k1)
		k3 := h * r.f(x+0.5*h, y+0.5*k2)
		k4 := h * r.f(x+h, y+k3)

		// increments are rounded once, after combining the unrounded stages
		delta := dynamo.Round4((k1 + 2.0*k2 + 2.0*k3 + k4) / 6.0)

		x += h
		y = dynamo.Round4(y + delta)

		r.push(x, y)
		r.emit(i+1, x, y, false,
			dynamo.Term{Name: "k1", Value: dynamo.Round4(k1)},
			dynamo.Term{Name: "k2", Value: dynamo.Round4(k2)},
			dynamo.Term{Name: "k3", Value: dynamo.Round4(k3)},
			dynamo.Term{Name: "k4", Value: dynamo.Round4(k4)},
			dynamo.Term{Name: "delta k", Value: delta},
		)
	}

	r.finish()
	return nil
}
