// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ineido/cgol/world"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Fade      FadeConfig      `yaml:"fade"`
	Run       RunConfig       `yaml:"run"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig holds the world dimensions and topology.
type GridConfig struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Seed     int64 `yaml:"seed"`     // -1 draws a fresh seed at startup
	Toroidal bool  `yaml:"toroidal"` // wrap edges instead of bounding them
}

// FadeConfig holds the gradual-death parameters.
type FadeConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Rate       float64 `yaml:"rate"`        // value lost per generation after death
	StartValue float64 `yaml:"start_value"` // value a cell holds right after death
}

// RunConfig holds driver-loop parameters.
type RunConfig struct {
	TickRate           float64 `yaml:"tick_rate"`       // generations per second; 0 = unpaced
	MaxGenerations     int     `yaml:"max_generations"` // 0 = unlimited
	InitialMode        string  `yaml:"initial_mode"`    // populate mode applied at startup
	PauseOnStalemate   bool    `yaml:"pause_on_stalemate"`
	PauseOnOscillators bool    `yaml:"pause_on_oscillators"`
	SaveFile           string  `yaml:"save_file"`
	LoadSave           bool    `yaml:"load_save"` // resume from save_file before stepping
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowGenerations int    `yaml:"window_generations"`
	OutputDir         string `yaml:"output_dir"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// World maps the loaded configuration onto an engine configuration. The
// engine does its own range validation at construction.
func (c *Config) World() world.Config {
	topo := world.Bounded
	if c.Grid.Toroidal {
		topo = world.Toroidal
	}
	rules := world.Binary
	if c.Fade.Enabled {
		rules = world.Fade
	}
	return world.Config{
		Width:     c.Grid.Width,
		Height:    c.Grid.Height,
		Seed:      c.Grid.Seed,
		Topology:  topo,
		Rules:     rules,
		FadeRate:  c.Fade.Rate,
		FadeStart: c.Fade.StartValue,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
