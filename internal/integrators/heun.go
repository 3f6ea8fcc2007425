package integrators

import "github.com/san-kum/odestep/internal/dynamo"

// ModifiedEuler is Heun's predictor-corrector. Only the corrector is stored;
// the predictor is reported to observers.
type ModifiedEuler struct {
	base
}

func NewModifiedEuler(opts ...Option) *ModifiedEuler {
	return &ModifiedEuler{base: newBase(dynamo.Info{
		Key:    "modified_euler",
		Name:   "Modified Euler's Method",
		Order:  2,
		Stages: 2,
	}, opts)}
}

func (m *ModifiedEuler) Solve() error {
	if err := m.begin(); err != nil {
		return err
	}

	x, y := m.params.X0, m.params.Y0
	h := m.params.H

	for i := 0; i < m.steps; i++ {
		k1 := m.f(x, y)
		xNext := x + h
		predictor := y + h*k1

		// k2 sees the unrounded predictor; only the reported value is rounded.
		k2 := m.f(xNext, predictor)
		corrector := dynamo.Round4(y + h*0.5*(k1+k2))

		x, y = xNext, corrector
		m.push(x, y)
		m.emit(i+1, x, y, false,
			dynamo.Term{Name: "predictor", Value: dynamo.Round4(predictor)},
			dynamo.Term{Name: "corrector", Value: corrector},
		)
	}

	m.finish()
	return nil
}
