package experiment

import (
	"fmt"
	"strings"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/integrators"
)

// ChoiceAll is the menu entry that runs every method.
const ChoiceAll = 6

type factory func(opts ...integrators.Option) dynamo.Method

type entry struct {
	name    string
	aliases []string
	build   factory
}

type Registry struct {
	entries []entry
	lookup  map[string]int
}

func NewRegistry() *Registry {
	r := &Registry{lookup: make(map[string]int)}

	r.register("euler", nil, func(opts ...integrators.Option) dynamo.Method {
		return integrators.NewEuler(opts...)
	})
	r.register("heun", []string{"modified_euler", "modified-euler"}, func(opts ...integrators.Option) dynamo.Method {
		return integrators.NewModifiedEuler(opts...)
	})
	r.register("rk2", nil, func(opts ...integrators.Option) dynamo.Method {
		return integrators.NewRK2(opts...)
	})
	r.register("rk4", nil, func(opts ...integrators.Option) dynamo.Method {
		return integrators.NewRK4(opts...)
	})
	r.register("ab4", []string{"adams_bashforth", "adams-bashforth"}, func(opts ...integrators.Option) dynamo.Method {
		return integrators.NewAdamsBashforth(opts...)
	})

	return r
}

func (r *Registry) register(name string, aliases []string, build factory) {
	idx := len(r.entries)
	r.entries = append(r.entries, entry{name: name, aliases: aliases, build: build})
	r.lookup[name] = idx
	for _, a := range aliases {
		r.lookup[a] = idx
	}
}

// Get builds the method registered under name or one of its aliases.
func (r *Registry) Get(name string, opts ...integrators.Option) (dynamo.Method, error) {
	idx, ok := r.lookup[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s (available: %s, all)", name, strings.Join(r.Names(), ", "))
	}
	return r.entries[idx].build(opts...), nil
}

// Resolve expands "all" and validates each name, returning canonical names.
func (r *Registry) Resolve(names []string) ([]string, error) {
	var out []string
	for _, n := range names {
		if strings.EqualFold(n, "all") {
			out = append(out, r.Names()...)
			continue
		}
		idx, ok := r.lookup[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown method: %s (available: %s, all)", n, strings.Join(r.Names(), ", "))
		}
		out = append(out, r.entries[idx].name)
	}
	return out, nil
}

// ByChoice maps the interactive menu numbers 1-5 to a single method and 6
// to every method.
func (r *Registry) ByChoice(choice int) ([]string, error) {
	switch {
	case choice >= 1 && choice <= len(r.entries):
		return []string{r.entries[choice-1].name}, nil
	case choice == ChoiceAll:
		return r.Names(), nil
	}
	return nil, fmt.Errorf("%w: invalid option %d, choose a number between 1 and %d",
		dynamo.ErrInvalidInput, choice, ChoiceAll)
}

// Names returns canonical method names in menu order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}
