package experiment

import (
	"errors"
	"testing"

	"github.com/san-kum/odestep/internal/dynamo"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		key  string
	}{
		{"euler", "euler"},
		{"heun", "modified_euler"},
		{"modified_euler", "modified_euler"},
		{"RK2", "rk2"},
		{"rk4", "rk4"},
		{"ab4", "adams_bashforth"},
		{"adams-bashforth", "adams_bashforth"},
	}

	for _, tt := range tests {
		m, err := r.Get(tt.name)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if m.Info().Key != tt.key {
			t.Errorf("%s: expected key %s, got %s", tt.name, tt.key, m.Info().Key)
		}
	}

	if _, err := r.Get("leapfrog"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestRegistryGetReturnsFreshInstances(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Get("rk4")
	b, _ := r.Get("rk4")
	if a == b {
		t.Error("expected independent instances")
	}
}

func TestByChoice(t *testing.T) {
	r := NewRegistry()

	for choice, want := range map[int]string{1: "euler", 2: "heun", 3: "rk2", 4: "rk4", 5: "ab4"} {
		names, err := r.ByChoice(choice)
		if err != nil {
			t.Fatalf("choice %d: %v", choice, err)
		}
		if len(names) != 1 || names[0] != want {
			t.Errorf("choice %d: got %v, want %s", choice, names, want)
		}
	}

	all, err := r.ByChoice(ChoiceAll)
	if err != nil || len(all) != 5 {
		t.Errorf("choice 6: got %v, %v", all, err)
	}

	for _, bad := range []int{0, 7, -1} {
		if _, err := r.ByChoice(bad); !errors.Is(err, dynamo.ErrInvalidInput) {
			t.Errorf("choice %d: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestResolve(t *testing.T) {
	r := NewRegistry()

	names, err := r.Resolve([]string{"rk4", "all"})
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 6 || names[0] != "rk4" || names[1] != "euler" {
		t.Errorf("unexpected resolution: %v", names)
	}

	if _, err := r.Resolve([]string{"nope"}); err == nil {
		t.Error("expected error")
	}
}
