package dynamo

import (
	"fmt"
	"math"
)

// Func is the right-hand side of dy/dx = f(x, y).
type Func func(x, y float64) float64

// Exact is a closed-form solution y(x) used to measure error.
type Exact func(x float64) float64

// DefaultFunc is dy/dx = x + y.
func DefaultFunc(x, y float64) float64 {
	return x + y
}

// DefaultExact is the solution of DefaultFunc through (0, 1): y = 2e^x - x - 1.
func DefaultExact(x float64) float64 {
	return 2*math.Exp(x) - x - 1
}

// Round4 rounds v half away from zero to four decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000.0) / 10000.0
}

type Params struct {
	X0      float64 `json:"x0" yaml:"x0"`
	Y0      float64 `json:"y0" yaml:"y0"`
	XTarget float64 `json:"x_target" yaml:"x_target"`
	H       float64 `json:"h" yaml:"h"`
}

// MaxSteps bounds the step count of a single solve.
const MaxSteps = 10_000_000

// Steps returns round((XTarget-X0)/H). A zero step, non-finite field,
// negative count or a count above MaxSteps is rejected with a *ParamError.
func (p Params) Steps() (int, error) {
	for _, v := range []float64{p.X0, p.Y0, p.XTarget, p.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &ParamError{Params: p, Reason: "parameters must be finite"}
		}
	}
	if p.H == 0 {
		return 0, &ParamError{Params: p, Reason: "step size must be non-zero"}
	}
	n := math.Round((p.XTarget - p.X0) / p.H)
	if n < 0 {
		return 0, &ParamError{Params: p, Reason: "target lies behind x0 for this step direction"}
	}
	if n > MaxSteps {
		return 0, &ParamError{Params: p, Reason: fmt.Sprintf("step count %.0f exceeds %d", n, MaxSteps)}
	}
	return int(n), nil
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trajectory is the ordered sequence of computed samples. Index 0 is the seed.
type Trajectory []Point

func (t Trajectory) Clone() Trajectory {
	c := make(Trajectory, len(t))
	copy(c, t)
	return c
}

// Last returns the final point and false when t is empty.
func (t Trajectory) Last() (Point, bool) {
	if len(t) == 0 {
		return Point{}, false
	}
	return t[len(t)-1], true
}

func (t Trajectory) Xs() []float64 {
	xs := make([]float64, len(t))
	for i, p := range t {
		xs[i] = p.X
	}
	return xs
}

func (t Trajectory) Ys() []float64 {
	ys := make([]float64, len(t))
	for i, p := range t {
		ys[i] = p.Y
	}
	return ys
}

// Term is a named intermediate quantity of a step (k1, predictor, ...).
type Term struct {
	Name  string
	Value float64
}

// StepEvent describes one computed point.
type StepEvent struct {
	Method    string
	Step      int
	X         float64
	Y         float64
	Terms     []Term
	Exact     float64
	HasExact  bool
	Bootstrap bool
}

type Observer interface {
	OnStep(ev StepEvent)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ev StepEvent)

func (f ObserverFunc) OnStep(ev StepEvent) { f(ev) }

// Info describes a stepping algorithm.
type Info struct {
	Key    string
	Name   string
	Order  int
	Stages int
}

// Stats counts the work done by the last Solve.
type Stats struct {
	Steps       int
	Evaluations int
}

// Method is the capability shared by all stepping algorithms.
type Method interface {
	Configure(p Params) error
	Solve() error
	Result() (float64, error)
	Trajectory() Trajectory
	Name() string
	Info() Info
	MaxError() (float64, error)
	CompareExact() bool
	Params() Params
	Steps() int
	Stats() Stats
}

// RunObserver is an Observer that also wants to know when a solve starts
// and finishes.
type RunObserver interface {
	Observer
	OnStart(info Info, p Params)
	OnFinish(info Info, last Point)
}
