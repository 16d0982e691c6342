package config

import "sort"

// Presets are named overrides applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {
		c.Layout = "single"
	},
	"binary": func(c *Config) {
		c.Layout = "binary"
		c.MaxBodies = 2
	},
	"ring": func(c *Config) {
		c.Layout = "ring"
		c.MaxBodies = 7
		c.Mass = 25
	},
	"swarm": func(c *Config) {
		c.Layout = "noise"
		c.MaxBodies = 10
		c.G = 20
	},
	"bouncy": func(c *Config) {
		c.Layout = "ring"
		c.MaxBodies = 4
		c.Rebound = 1.0
	},
	"small": func(c *Config) {
		c.Width = 800
		c.Height = 600
		c.Layout = "binary"
		c.MaxBodies = 2
	},
}

// GetPreset returns a default config with the named preset applied, or nil
// if no such preset exists.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ApplyPreset applies the named preset to cfg in place.
func ApplyPreset(cfg *Config, name string) bool {
	apply, ok := Presets[name]
	if ok {
		apply(cfg)
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
