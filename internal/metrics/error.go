package metrics

import (
	"math"

	"github.com/san-kum/odestep/internal/dynamo"
)

// Metric accumulates a value over the points of a trajectory.
type Metric interface {
	Name() string
	Observe(p dynamo.Point)
	Value() float64
	Reset()
}

// MaxAbsError tracks max |exact(x) - y|, the global truncation error.
type MaxAbsError struct {
	exact dynamo.Exact
	max   float64
}

func NewMaxAbsError(exact dynamo.Exact) *MaxAbsError {
	return &MaxAbsError{exact: exact}
}

func (m *MaxAbsError) Name() string { return "max_abs_error" }

func (m *MaxAbsError) Observe(p dynamo.Point) {
	m.max = math.Max(m.max, math.Abs(m.exact(p.X)-p.Y))
}

func (m *MaxAbsError) Value() float64 { return m.max }

func (m *MaxAbsError) Reset() { m.max = 0 }

type MeanAbsError struct {
	exact   dynamo.Exact
	sum     float64
	samples int
}

func NewMeanAbsError(exact dynamo.Exact) *MeanAbsError {
	return &MeanAbsError{exact: exact}
}

func (m *MeanAbsError) Name() string { return "mean_abs_error" }

func (m *MeanAbsError) Observe(p dynamo.Point) {
	m.sum += math.Abs(m.exact(p.X) - p.Y)
	m.samples++
}

func (m *MeanAbsError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanAbsError) Reset() {
	m.sum = 0
	m.samples = 0
}

type RMSError struct {
	exact   dynamo.Exact
	sumSq   float64
	samples int
}

func NewRMSError(exact dynamo.Exact) *RMSError {
	return &RMSError{exact: exact}
}

func (m *RMSError) Name() string { return "rms_error" }

func (m *RMSError) Observe(p dynamo.Point) {
	d := m.exact(p.X) - p.Y
	m.sumSq += d * d
	m.samples++
}

func (m *RMSError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.sumSq / float64(m.samples))
}

func (m *RMSError) Reset() {
	m.sumSq = 0
	m.samples = 0
}

// Evaluate resets each metric, feeds it every point of traj and returns the
// values keyed by metric name.
func Evaluate(traj dynamo.Trajectory, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, p := range traj {
			m.Observe(p)
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// ErrorSuite returns the standard error metrics against exact.
func ErrorSuite(exact dynamo.Exact) []Metric {
	return []Metric{
		NewMaxAbsError(exact),
		NewMeanAbsError(exact),
		NewRMSError(exact),
	}
}
