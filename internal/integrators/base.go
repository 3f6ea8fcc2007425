package integrators

import (
	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/metrics"
)

// Option configures a method at construction time.
type Option func(*base)

// WithFunc sets the differential function. Defaults to dynamo.DefaultFunc.
func WithFunc(f dynamo.Func) Option {
	return func(b *base) { b.fn = f }
}

// WithExact supplies the closed-form solution used by MaxError and tracing.
func WithExact(e dynamo.Exact) Option {
	return func(b *base) { b.exact = e }
}

// WithCompareExact attaches exact values to emitted step events.
func WithCompareExact(on bool) Option {
	return func(b *base) { b.compare = on }
}

// WithObserver receives a StepEvent for every computed point.
func WithObserver(o dynamo.Observer) Option {
	return func(b *base) { b.observer = o }
}

type base struct {
	info     dynamo.Info
	fn       dynamo.Func
	exact    dynamo.Exact
	compare  bool
	observer dynamo.Observer

	params     dynamo.Params
	steps      int
	configured bool
	solved     bool
	traj       dynamo.Trajectory
	evals      int
}

func newBase(info dynamo.Info, opts []Option) base {
	b := base{info: info}
	for _, opt := range opts {
		opt(&b)
	}
	if b.fn == nil {
		b.fn = dynamo.DefaultFunc
	}
	return b
}

func (b *base) Name() string      { return b.info.Name }
func (b *base) Info() dynamo.Info { return b.info }

func (b *base) Params() dynamo.Params { return b.params }
func (b *base) Steps() int            { return b.steps }

// CompareExact reports whether exact comparison is enabled and possible.
func (b *base) CompareExact() bool { return b.compare && b.exact != nil }

func (b *base) Stats() dynamo.Stats {
	taken := 0
	if len(b.traj) > 0 {
		taken = len(b.traj) - 1
	}
	return dynamo.Stats{Steps: taken, Evaluations: b.evals}
}

// Configure validates p and resets the trajectory to the seed point.
func (b *base) Configure(p dynamo.Params) error {
	steps, err := p.Steps()
	if err != nil {
		b.configured = false
		b.solved = false
		b.steps = 0
		b.traj = nil
		return err
	}

	b.params = p
	b.steps = steps
	b.configured = true
	b.solved = false
	b.evals = 0
	b.resetTrajectory()
	return nil
}

// maxPrealloc caps the capacity reserved up front; append grows past it.
const maxPrealloc = 1 << 16

func (b *base) resetTrajectory() {
	b.traj = make(dynamo.Trajectory, 1, min(b.steps+1, maxPrealloc))
	b.traj[0] = dynamo.Point{X: b.params.X0, Y: b.params.Y0}
}

func (b *base) ready() bool {
	return b.configured && (b.solved || b.steps == 0)
}

func (b *base) Result() (float64, error) {
	if !b.ready() {
		return 0, dynamo.ErrNotSolved
	}
	return b.traj[len(b.traj)-1].Y, nil
}

// Trajectory returns a copy of the computed points.
func (b *base) Trajectory() dynamo.Trajectory {
	return b.traj.Clone()
}

// MaxError returns the maximum absolute deviation from the exact solution
// over every point of the trajectory.
func (b *base) MaxError() (float64, error) {
	if b.exact == nil {
		return 0, dynamo.ErrNoExact
	}
	if !b.ready() {
		return 0, dynamo.ErrNotSolved
	}
	return metrics.Evaluate(b.traj, metrics.NewMaxAbsError(b.exact))["max_abs_error"], nil
}

// begin prepares a fresh solve: re-solving never appends to an old run.
func (b *base) begin() error {
	if !b.configured {
		return dynamo.ErrNotConfigured
	}
	b.solved = false
	b.evals = 0
	b.resetTrajectory()
	if ro, ok := b.observer.(dynamo.RunObserver); ok {
		ro.OnStart(b.info, b.params)
	}
	return nil
}

func (b *base) finish() {
	b.solved = true
	if ro, ok := b.observer.(dynamo.RunObserver); ok {
		ro.OnFinish(b.info, b.traj[len(b.traj)-1])
	}
}

func (b *base) f(x, y float64) float64 {
	b.evals++
	return b.fn(x, y)
}

func (b *base) push(x, y float64) {
	b.traj = append(b.traj, dynamo.Point{X: x, Y: y})
}

func (b *base) emit(step int, x, y float64, bootstrap bool, terms ...dynamo.Term) {
	if b.observer == nil {
		return
	}
	ev := dynamo.StepEvent{
		Method:    b.info.Name,
		Step:      step,
		X:         x,
		Y:         y,
		Terms:     terms,
		Bootstrap: bootstrap,
	}
	if b.CompareExact() {
		ev.Exact = b.exact(x)
		ev.HasExact = true
	}
	b.observer.OnStep(ev)
}
