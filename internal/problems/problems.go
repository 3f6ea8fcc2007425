package problems

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/odestep/internal/dynamo"
)

const Default = "linear"

type Problem struct {
	Name     string
	Equation string
	Func     dynamo.Func

	solution func(x0, y0 float64) dynamo.Exact
}

// HasExact reports whether the problem has a closed-form solution.
func (p *Problem) HasExact() bool {
	return p.solution != nil
}

// ExactFor returns the closed-form solution through (x0, y0), or nil.
func (p *Problem) ExactFor(x0, y0 float64) dynamo.Exact {
	if p.solution == nil {
		return nil
	}
	return p.solution(x0, y0)
}

var catalogue = map[string]*Problem{
	"linear": {
		Name:     "linear",
		Equation: "dy/dx = x + y",
		Func:     dynamo.DefaultFunc,
		solution: func(x0, y0 float64) dynamo.Exact {
			if x0 == 0 && y0 == 1 {
				return dynamo.DefaultExact
			}
			c := (y0 + x0 + 1) * math.Exp(-x0)
			return func(x float64) float64 {
				return c*math.Exp(x) - x - 1
			}
		},
	},
	"quadratic": {
		Name:     "quadratic",
		Equation: "dy/dx = x^2 + y",
		Func:     func(x, y float64) float64 { return x*x + y },
		solution: func(x0, y0 float64) dynamo.Exact {
			c := (y0 + x0*x0 + 2*x0 + 2) * math.Exp(-x0)
			return func(x float64) float64 {
				return c*math.Exp(x) - x*x - 2*x - 2
			}
		},
	},
	"product": {
		Name:     "product",
		Equation: "dy/dx = x * y",
		Func:     func(x, y float64) float64 { return x * y },
		solution: func(x0, y0 float64) dynamo.Exact {
			return func(x float64) float64 {
				return y0 * math.Exp((x*x-x0*x0)/2)
			}
		},
	},
	"growth": {
		Name:     "growth",
		Equation: "dy/dx = y",
		Func:     func(x, y float64) float64 { return y },
		solution: func(x0, y0 float64) dynamo.Exact {
			return func(x float64) float64 {
				return y0 * math.Exp(x-x0)
			}
		},
	},
	"logistic": {
		Name:     "logistic",
		Equation: "dy/dx = y * (1 - y)",
		Func:     func(x, y float64) float64 { return y * (1 - y) },
		solution: func(x0, y0 float64) dynamo.Exact {
			if y0 == 0 {
				return func(float64) float64 { return 0 }
			}
			k := (1 - y0) / y0
			return func(x float64) float64 {
				return 1 / (1 + k*math.Exp(-(x - x0)))
			}
		},
	},
	"trig": {
		Name:     "trig",
		Equation: "dy/dx = sin(x) + cos(y)",
		Func:     func(x, y float64) float64 { return math.Sin(x) + math.Cos(y) },
	},
}

func Get(name string) (*Problem, error) {
	p, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s (available: %v)", name, Names())
	}
	return p, nil
}

// Names lists the registered problems alphabetically.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
