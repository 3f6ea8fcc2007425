package integrators

import "github.com/san-kum/odestep/internal/dynamo"

// Euler advances y_{i+1} = y_i + h*f(x_i, y_i).
type Euler struct {
	base
}

func NewEuler(opts ...Option) *Euler {
	return &Euler{base: newBase(dynamo.Info{
		Key:    "euler",
		Name:   "Euler's Method",
		Order:  1,
		Stages: 1,
	}, opts)}
}

func (e *Euler) Solve() error {
	if err := e.begin(); err != nil {
		return err
	}

	x, y := e.params.X0, e.params.Y0
	h := e.params.H

	for i := 0; i < e.steps; i++ {
		slope := e.f(x, y)
		x += h
		y = dynamo.Round4(y + h*slope)

		e.push(x, y)
		e.emit(i+1, x, y, false, dynamo.Term{Name: "slope", Value: dynamo.Round4(slope)})
	}

	e.finish()
	return nil
}
