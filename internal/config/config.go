package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 1920
	DefaultHeight    = 1080
	DefaultMaxBodies = 10
	DefaultRebound   = 0.5
	DefaultMass      = 10.0
	DefaultG         = 9.8
	DefaultFPS       = 60
	DefaultTraceFile = "traces.json"
	DefaultLayout    = "single"
	DefaultBackend   = "raylib"
	DefaultLogLevel  = "info"
	DefaultSeed      = 1
)

// Backends lists the window hosts that can be selected.
var Backends = []string{"raylib", "ebiten"}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	MaxBodies int     `yaml:"max_bodies"`
	Rebound   float64 `yaml:"rebound_factor"`
	Mass      float64 `yaml:"mass"`
	G         float64 `yaml:"g"`
	FPS       int     `yaml:"fps"`
	TraceFile string  `yaml:"trace_file"`
	Layout    string  `yaml:"layout"`
	Backend   string  `yaml:"backend"`
	Seed      int64   `yaml:"seed"`
	LogLevel  string  `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MaxBodies: DefaultMaxBodies,
		Rebound:   DefaultRebound,
		Mass:      DefaultMass,
		G:         DefaultG,
		FPS:       DefaultFPS,
		TraceFile: DefaultTraceFile,
		Layout:    DefaultLayout,
		Backend:   DefaultBackend,
		Seed:      DefaultSeed,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads a YAML file on top of the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first problem that would make the simulation
// ill-defined.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Width, c.Height)
	case c.MaxBodies < 1:
		return fmt.Errorf("%w: max_bodies must be at least 1, got %d", ErrInvalid, c.MaxBodies)
	case !(c.Mass > 0):
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalid, c.Mass)
	case c.Rebound < 0:
		return fmt.Errorf("%w: rebound_factor must not be negative, got %v", ErrInvalid, c.Rebound)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.TraceFile == "":
		return fmt.Errorf("%w: trace_file must not be empty", ErrInvalid)
	}
	if !contains(Backends, c.Backend) {
		return fmt.Errorf("%w: unknown backend %q (available: %v)", ErrInvalid, c.Backend, Backends)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
