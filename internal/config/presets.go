package config

import "sort"

var Presets = map[string]map[string]*Config{
	"linear": {
		"textbook": {
			Problem: "linear", Method: "all", X0: 0, Y0: 1, XTarget: 0.2, H: 0.1, CompareExact: true,
		},
		"unit": {
			Problem: "linear", Method: "all", X0: 0, Y0: 1, XTarget: 1, H: 0.1, CompareExact: true,
		},
		"fine": {
			Problem: "linear", Method: "all", X0: 0, Y0: 1, XTarget: 1, H: 0.01, CompareExact: true,
		},
		"backward": {
			Problem: "linear", Method: "rk4", X0: 1, Y0: 3.4366, XTarget: 0, H: -0.1, CompareExact: true,
		},
	},
	"quadratic": {
		"unit": {
			Problem: "quadratic", Method: "all", X0: 0, Y0: 1, XTarget: 1, H: 0.1, CompareExact: true,
		},
	},
	"product": {
		"bell": {
			Problem: "product", Method: "all", X0: -2, Y0: 0.1353, XTarget: 0, H: 0.1, CompareExact: true,
		},
	},
	"growth": {
		"double": {
			Problem: "growth", Method: "all", X0: 0, Y0: 1, XTarget: 0.6931, H: 0.0693, CompareExact: true,
		},
	},
	"logistic": {
		"sigmoid": {
			Problem: "logistic", Method: "all", X0: -4, Y0: 0.018, XTarget: 4, H: 0.25, CompareExact: true,
		},
	},
	"trig": {
		"wave": {
			Problem: "trig", Method: "all", X0: 0, Y0: 0, XTarget: 6, H: 0.2,
		},
	},
}

// GetPreset returns the named preset laid over DefaultConfig, or nil.
// Presets only carry the problem and its parameters; output settings keep
// their defaults.
func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	p, ok := problemPresets[preset]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Problem = p.Problem
	cfg.Method = p.Method
	cfg.X0, cfg.Y0, cfg.XTarget, cfg.H = p.X0, p.Y0, p.XTarget, p.H
	cfg.CompareExact = p.CompareExact
	return cfg
}

// ListPresets returns the preset names for problem, sorted.
func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
