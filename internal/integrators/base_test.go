package integrators

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/san-kum/odestep/internal/dynamo"
)

var textbook = dynamo.Params{X0: 0, Y0: 1, XTarget: 0.2, H: 0.1}

func solved(t *testing.T, m dynamo.Method, p dynamo.Params) dynamo.Method {
	t.Helper()
	if err := m.Configure(p); err != nil {
		t.Fatalf("%s: configure failed: %v", m.Name(), err)
	}
	if err := m.Solve(); err != nil {
		t.Fatalf("%s: solve failed: %v", m.Name(), err)
	}
	return m
}

func TestSeedAndLength(t *testing.T) {
	params := []dynamo.Params{
		{X0: 0, Y0: 1, XTarget: 0.2, H: 0.1},
		{X0: 0, Y0: 1, XTarget: 1.0, H: 0.1},
		{X0: 1.23456789, Y0: -0.987654321, XTarget: 2.0, H: 0.05},
		{X0: 0, Y0: 1, XTarget: 0, H: 0.1},
		{X0: 1, Y0: 2, XTarget: 0.5, H: -0.1},
	}

	for _, p := range params {
		want, err := p.Steps()
		if err != nil {
			t.Fatalf("steps(%+v): %v", p, err)
		}
		for _, m := range All() {
			solved(t, m, p)
			traj := m.Trajectory()

			if len(traj) != want+1 {
				t.Errorf("%s %+v: expected %d points, got %d", m.Name(), p, want+1, len(traj))
			}
			if traj[0].X != p.X0 || traj[0].Y != p.Y0 {
				t.Errorf("%s: seed %+v, want (%v, %v)", m.Name(), traj[0], p.X0, p.Y0)
			}
		}
	}
}

func TestConfigureBoundsPreallocation(t *testing.T) {
	e := NewEuler()
	if err := e.Configure(dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 1e-6}); err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	if c := cap(e.traj); c > maxPrealloc {
		t.Errorf("reserved %d points up front, want at most %d", c, maxPrealloc)
	}

	if err := e.Solve(); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if got, want := len(e.Trajectory()), e.Steps()+1; got != want {
		t.Errorf("expected %d points, got %d", want, got)
	}
}

func TestConfigureRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		params dynamo.Params
	}{
		{"zero step", dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 0}},
		{"target behind start", dynamo.Params{X0: 1, Y0: 1, XTarget: 0, H: 0.1}},
		{"negative step forward target", dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: -0.1}},
		{"nan", dynamo.Params{X0: math.NaN(), Y0: 1, XTarget: 1, H: 0.1}},
		{"too many steps", dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 1e-9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range All() {
				err := m.Configure(tt.params)
				if !errors.Is(err, dynamo.ErrInvalidInput) {
					t.Fatalf("%s: expected ErrInvalidInput, got %v", m.Name(), err)
				}
				var pe *dynamo.ParamError
				if !errors.As(err, &pe) {
					t.Errorf("%s: expected *ParamError, got %T", m.Name(), err)
				}
				if len(m.Trajectory()) != 0 {
					t.Errorf("%s: expected no partial trajectory", m.Name())
				}
				if err := m.Solve(); !errors.Is(err, dynamo.ErrNotConfigured) {
					t.Errorf("%s: expected ErrNotConfigured, got %v", m.Name(), err)
				}
			}
		})
	}
}

func TestFailedReconfigureInvalidatesTrajectory(t *testing.T) {
	m := solved(t, NewEuler(), textbook)

	if err := m.Configure(dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 0}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := m.Result(); !errors.Is(err, dynamo.ErrNotSolved) {
		t.Errorf("expected ErrNotSolved after failed configure, got %v", err)
	}
}

func TestResultBeforeSolve(t *testing.T) {
	for _, m := range All(WithExact(dynamo.DefaultExact)) {
		if _, err := m.Result(); !errors.Is(err, dynamo.ErrNotSolved) {
			t.Errorf("%s: unconfigured: expected ErrNotSolved, got %v", m.Name(), err)
		}

		if err := m.Configure(textbook); err != nil {
			t.Fatal(err)
		}
		if _, err := m.Result(); !errors.Is(err, dynamo.ErrNotSolved) {
			t.Errorf("%s: expected ErrNotSolved, got %v", m.Name(), err)
		}
		if _, err := m.MaxError(); !errors.Is(err, dynamo.ErrNotSolved) {
			t.Errorf("%s: expected ErrNotSolved from MaxError, got %v", m.Name(), err)
		}
	}
}

func TestZeroStepsNeedsNoSolve(t *testing.T) {
	m := NewRK4()
	if err := m.Configure(dynamo.Params{X0: 0.5, Y0: 3, XTarget: 0.5, H: 0.1}); err != nil {
		t.Fatal(err)
	}

	y, err := m.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y != 3 {
		t.Errorf("expected y0, got %f", y)
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	p := dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 0.1}

	for _, m := range All() {
		solved(t, m, p)
		first := m.Trajectory()

		if err := m.Solve(); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, m.Trajectory()) {
			t.Errorf("%s: re-solve changed trajectory", m.Name())
		}

		solved(t, m, p)
		if !reflect.DeepEqual(first, m.Trajectory()) {
			t.Errorf("%s: configure+solve changed trajectory", m.Name())
		}
	}
}

func TestTrajectoryIsCopy(t *testing.T) {
	m := solved(t, NewEuler(), textbook)

	traj := m.Trajectory()
	traj[1].Y = 99

	if m.Trajectory()[1].Y == 99 {
		t.Error("caller mutated method trajectory")
	}
}

func TestMaxErrorIsGlobalMaximum(t *testing.T) {
	// y stays at 0 while the reference bumps to 1 at x = 0.5 and returns
	// to ~0 at x = 1, so the largest deviation is interior.
	flat := func(x, y float64) float64 { return 0 }
	bump := func(x float64) float64 { return math.Sin(math.Pi * x) }

	m := NewEuler(WithFunc(flat), WithExact(bump))
	solved(t, m, dynamo.Params{X0: 0, Y0: 0, XTarget: 1, H: 0.25})

	maxErr, err := m.MaxError()
	if err != nil {
		t.Fatal(err)
	}

	final, _ := m.Result()
	finalErr := math.Abs(bump(1) - final)

	if math.Abs(maxErr-1) > 1e-12 {
		t.Errorf("expected max error 1 at x=0.5, got %f", maxErr)
	}
	if finalErr >= maxErr {
		t.Errorf("final error %g should be below interior max %g", finalErr, maxErr)
	}
}

func TestMaxErrorWithoutExact(t *testing.T) {
	m := solved(t, NewEuler(), textbook)
	if _, err := m.MaxError(); !errors.Is(err, dynamo.ErrNoExact) {
		t.Errorf("expected ErrNoExact, got %v", err)
	}
	if m.CompareExact() {
		t.Error("CompareExact should be false without an exact solution")
	}
}

func TestCompareExactCapability(t *testing.T) {
	if NewEuler(WithExact(dynamo.DefaultExact)).CompareExact() {
		t.Error("comparison not enabled")
	}
	if !NewEuler(WithExact(dynamo.DefaultExact), WithCompareExact(true)).CompareExact() {
		t.Error("expected comparison enabled")
	}
}

func TestOrderOfAccuracy(t *testing.T) {
	euler := solved(t, NewEuler(WithExact(dynamo.DefaultExact)), textbook)
	rk4 := solved(t, NewRK4(WithExact(dynamo.DefaultExact)), textbook)

	eErr, _ := euler.MaxError()
	rErr, _ := rk4.MaxError()

	if rErr > eErr {
		t.Errorf("rk4 error %g exceeds euler error %g", rErr, eErr)
	}
}

type recorder struct {
	events   []dynamo.StepEvent
	started  int
	finished int
}

func (r *recorder) OnStep(ev dynamo.StepEvent) { r.events = append(r.events, ev) }

func (r *recorder) OnStart(info dynamo.Info, p dynamo.Params) { r.started++ }

func (r *recorder) OnFinish(info dynamo.Info, last dynamo.Point) { r.finished++ }

func TestObserverEvents(t *testing.T) {
	rec := &recorder{}
	m := NewRK2(WithObserver(rec), WithExact(dynamo.DefaultExact), WithCompareExact(true))
	solved(t, m, textbook)

	if len(rec.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.events))
	}
	if rec.started != 1 || rec.finished != 1 {
		t.Errorf("expected one start/finish, got %d/%d", rec.started, rec.finished)
	}

	traj := m.Trajectory()
	for i, ev := range rec.events {
		if ev.Step != i+1 {
			t.Errorf("event %d: step %d", i, ev.Step)
		}
		if ev.X != traj[i+1].X || ev.Y != traj[i+1].Y {
			t.Errorf("event %d does not match trajectory", i)
		}
		if !ev.HasExact || ev.Exact != dynamo.DefaultExact(ev.X) {
			t.Errorf("event %d: missing exact value", i)
		}
		if len(ev.Terms) != 3 {
			t.Errorf("event %d: expected k1, k2, delta terms, got %v", i, ev.Terms)
		}
	}
}

func TestObserverFunc(t *testing.T) {
	count := 0
	obs := dynamo.ObserverFunc(func(ev dynamo.StepEvent) { count++ })

	solved(t, NewEuler(WithObserver(obs)), dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 0.1})

	if count != 10 {
		t.Errorf("expected 10 events, got %d", count)
	}
}

func TestStats(t *testing.T) {
	p := dynamo.Params{X0: 0, Y0: 1, XTarget: 0.5, H: 0.1}

	tests := []struct {
		method dynamo.Method
		evals  int
	}{
		{NewEuler(), 5},
		{NewModifiedEuler(), 10},
		{NewRK2(), 10},
		{NewRK4(), 20},
		// 3 RK4 steps + 4 window seeds + 2 new points
		{NewAdamsBashforth(), 18},
	}

	for _, tt := range tests {
		solved(t, tt.method, p)
		st := tt.method.Stats()
		if st.Steps != 5 {
			t.Errorf("%s: expected 5 steps, got %d", tt.method.Name(), st.Steps)
		}
		if st.Evaluations != tt.evals {
			t.Errorf("%s: expected %d evaluations, got %d", tt.method.Name(), tt.evals, st.Evaluations)
		}
	}
}

func TestDefaultFuncUsed(t *testing.T) {
	a := solved(t, NewRK4(), textbook)
	b := solved(t, NewRK4(WithFunc(dynamo.DefaultFunc)), textbook)

	if !reflect.DeepEqual(a.Trajectory(), b.Trajectory()) {
		t.Error("default function differs from dynamo.DefaultFunc")
	}
}
