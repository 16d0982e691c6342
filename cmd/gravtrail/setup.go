package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravtrail/internal/config"
	"github.com/san-kum/gravtrail/internal/logging"
	"github.com/san-kum/gravtrail/internal/metrics"
	"github.com/san-kum/gravtrail/internal/physics"
	"github.com/san-kum/gravtrail/internal/scene"
	"github.com/san-kum/gravtrail/internal/sim"
	"github.com/san-kum/gravtrail/internal/trace"
)

// environment is everything a run command needs.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	sim    *sim.Simulator
	energy *metrics.Energy
}

// loadConfig layers defaults, the config file, the preset and finally any
// flags set on cmd, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" && !config.ApplyPreset(cfg, preset) {
		return nil, fmt.Errorf("%w: unknown preset %q", config.ErrInvalid, preset)
	}
	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !scene.NewRegistry().Has(cfg.Layout) {
		return nil, fmt.Errorf("%w: %w %q", config.ErrInvalid, scene.ErrUnknownLayout, cfg.Layout)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if changed("traces") {
		cfg.TraceFile = traceFile
	}
	if changed("width") {
		cfg.Width = flags.width
	}
	if changed("height") {
		cfg.Height = flags.height
	}
	if changed("max-bodies") {
		cfg.MaxBodies = flags.maxBodies
	}
	if changed("rebound") {
		cfg.Rebound = flags.rebound
	}
	if changed("mass") {
		cfg.Mass = flags.mass
	}
	if changed("g") {
		cfg.G = flags.g
	}
	if changed("fps") {
		cfg.FPS = flags.fps
	}
	if changed("layout") {
		cfg.Layout = flags.layout
	}
	if changed("backend") {
		cfg.Backend = flags.backend
	}
	if changed("seed") {
		cfg.Seed = flags.seed
	}
}

func setup(cmd *cobra.Command) (*environment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return newEnvironment(cfg, logging.NewLogger(cfg.LogLevel, os.Stderr))
}

func newEnvironment(cfg *config.Config, logger *slog.Logger) (*environment, error) {
	engine, err := physics.NewEngine(cfg.G, float64(cfg.Width), float64(cfg.Height))
	if err != nil {
		return nil, err
	}

	bodies, err := scene.NewRegistry().Build(cfg.Layout, scene.Params{
		Width:   float64(cfg.Width),
		Height:  float64(cfg.Height),
		Count:   cfg.MaxBodies,
		Mass:    cfg.Mass,
		Rebound: cfg.Rebound,
		G:       cfg.G,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	s := sim.New(engine, bodies, trace.NewStore(cfg.TraceFile), logger)
	var energy *metrics.Energy
	for _, m := range metrics.Defaults() {
		if e, ok := m.(*metrics.Energy); ok {
			energy = e
		}
		s.AddMetric(m)
	}

	logger.Debug("simulation ready", "layout", cfg.Layout, "bodies", len(bodies),
		"g", cfg.G, "width", cfg.Width, "height", cfg.Height, "traces", cfg.TraceFile)
	return &environment{cfg: cfg, logger: logger, sim: s, energy: energy}, nil
}
