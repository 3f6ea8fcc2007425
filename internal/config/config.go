package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/odestep/internal/dynamo"
)

const (
	DefaultProblem = "linear"
	DefaultMethod  = "all"
	DefaultX0      = 0.0
	DefaultY0      = 1.0
	DefaultXTarget = 0.2
	DefaultH       = 0.1
	DefaultDelayMS = 100
	DefaultOutDir  = "."
	DefaultDataDir = ".odestep"
)

type Config struct {
	Problem      string  `yaml:"problem" toml:"problem"`
	Method       string  `yaml:"method" toml:"method"`
	X0           float64 `yaml:"x0" toml:"x0"`
	Y0           float64 `yaml:"y0" toml:"y0"`
	XTarget      float64 `yaml:"x_target" toml:"x_target"`
	H            float64 `yaml:"h" toml:"h"`
	CompareExact bool    `yaml:"compare_exact" toml:"compare_exact"`
	SaveCSV      bool    `yaml:"save_csv" toml:"save_csv"`
	Compare      bool    `yaml:"compare" toml:"compare"`
	Trace        bool    `yaml:"trace" toml:"trace"`
	DelayMS      int     `yaml:"delay_ms" toml:"delay_ms"`
	OutDir       string  `yaml:"out_dir" toml:"out_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Method:  DefaultMethod,
		X0:      DefaultX0,
		Y0:      DefaultY0,
		XTarget: DefaultXTarget,
		H:       DefaultH,
		Trace:   true,
		DelayMS: DefaultDelayMS,
		OutDir:  DefaultOutDir,
	}
}

// Load reads a YAML or TOML file (by extension) over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &dynamo.FileError{Path: path, Wrapped: err}
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Params() dynamo.Params {
	return dynamo.Params{X0: c.X0, Y0: c.Y0, XTarget: c.XTarget, H: c.H}
}

// Validate checks the numeric parameters without solving anything.
func (c *Config) Validate() error {
	_, err := c.Params().Steps()
	return err
}
