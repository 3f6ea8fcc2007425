package integrators

import (
	"testing"

	"github.com/san-kum/odestep/internal/dynamo"
)

func TestEulerFirstStep(t *testing.T) {
	m := solved(t, NewEuler(), dynamo.Params{X0: 0, Y0: 1, XTarget: 0.1, H: 0.1})

	y, err := m.Result()
	if err != nil {
		t.Fatal(err)
	}
	if y != 1.1 {
		t.Errorf("expected y1 = 1.1, got %v", y)
	}
}

func TestEulerTextbook(t *testing.T) {
	m := solved(t, NewEuler(), dynamo.Params{X0: 0, Y0: 1, XTarget: 0.3, H: 0.1})

	want := []float64{1, 1.1, 1.22, 1.362}
	traj := m.Trajectory()
	for i, w := range want {
		if traj[i].Y != w {
			t.Errorf("y%d: expected %v, got %v", i, w, traj[i].Y)
		}
	}
}

func TestEulerRoundsEveryStep(t *testing.T) {
	// y' = 1/3 gives 0.033333.. per step at h = 0.1; rounding each step
	// accumulates to 0.0333 * 3, not round(0.1).
	third := func(x, y float64) float64 { return 1.0 / 3.0 }
	m := solved(t, NewEuler(WithFunc(third)), dynamo.Params{X0: 0, Y0: 0, XTarget: 0.3, H: 0.1})

	y, _ := m.Result()
	if y != 0.0999 {
		t.Errorf("expected accumulated rounding 0.0999, got %v", y)
	}
}
