package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/integrators"
	"github.com/san-kum/odestep/internal/logger"
	"github.com/san-kum/odestep/internal/problems"
)

type Config struct {
	Problem      string
	Methods      []string
	Params       dynamo.Params
	CompareExact bool

	// Observer, when set, receives the step trace of every method.
	Observer dynamo.Observer
}

type Experiment struct {
	cfg      Config
	registry *Registry
	problem  *problems.Problem
	exact    dynamo.Exact
}

func New(cfg Config, registry *Registry) (*Experiment, error) {
	if cfg.Problem == "" {
		cfg.Problem = problems.Default
	}
	prob, err := problems.Get(cfg.Problem)
	if err != nil {
		return nil, err
	}

	names, err := registry.Resolve(cfg.Methods)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no methods selected", dynamo.ErrInvalidInput)
	}
	cfg.Methods = names

	if _, err := cfg.Params.Steps(); err != nil {
		return nil, err
	}

	return &Experiment{
		cfg:      cfg,
		registry: registry,
		problem:  prob,
		exact:    prob.ExactFor(cfg.Params.X0, cfg.Params.Y0),
	}, nil
}

func (e *Experiment) Problem() *problems.Problem { return e.problem }

// Exact returns the problem's closed form through the configured initial
// point, or nil when the problem has none.
func (e *Experiment) Exact() dynamo.Exact { return e.exact }

// Run solves each selected method one after another. Instances share
// nothing; ctx is only consulted between methods.
func (e *Experiment) Run(ctx context.Context) ([]dynamo.Method, error) {
	opts := []integrators.Option{
		integrators.WithFunc(e.problem.Func),
		integrators.WithCompareExact(e.cfg.CompareExact),
	}
	if e.exact != nil {
		opts = append(opts, integrators.WithExact(e.exact))
	}
	if e.cfg.Observer != nil {
		opts = append(opts, integrators.WithObserver(e.cfg.Observer))
	}

	solved := make([]dynamo.Method, 0, len(e.cfg.Methods))
	for _, name := range e.cfg.Methods {
		if err := ctx.Err(); err != nil {
			return solved, err
		}

		m, err := e.registry.Get(name, opts...)
		if err != nil {
			return solved, err
		}
		if err := m.Configure(e.cfg.Params); err != nil {
			return solved, fmt.Errorf("%s: %w", m.Name(), err)
		}

		logger.Debug("solving %s: %s, x0=%g y0=%g target=%g h=%g steps=%d",
			m.Name(), e.problem.Equation, e.cfg.Params.X0, e.cfg.Params.Y0,
			e.cfg.Params.XTarget, e.cfg.Params.H, m.Steps())

		if err := m.Solve(); err != nil {
			return solved, fmt.Errorf("%s: %w", m.Name(), err)
		}

		st := m.Stats()
		logger.Debug("%s done: %d steps, %d evaluations", m.Name(), st.Steps, st.Evaluations)
		solved = append(solved, m)
	}

	return solved, nil
}
