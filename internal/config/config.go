// Package config loads host configuration for the sand binaries.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"sand-ca/internal/logging"
	"sand-ca/internal/rules"
	"sand-ca/internal/sims/sand"
)

// Config is the full host configuration.
type Config struct {
	// Sim configures the automaton.
	Sim SimConfig `yaml:"sim"`

	// Window configures the GUI host.
	Window WindowConfig `yaml:"window"`

	// Logging configures the slog output of both binaries.
	Logging LoggingConfig `yaml:"logging"`
}

// SimConfig mirrors sand.Config with file and environment bindings.
type SimConfig struct {
	Name               string  `yaml:"name" env:"SAND_SIM"`
	Width              int     `yaml:"width" env:"SAND_WIDTH"`
	Height             int     `yaml:"height" env:"SAND_HEIGHT"`
	Seed               int64   `yaml:"seed" env:"SAND_SEED"`
	Fill               string  `yaml:"fill" env:"SAND_FILL"`
	Density            float64 `yaml:"density" env:"SAND_DENSITY"`
	Rules              string  `yaml:"rules" env:"SAND_RULES"`
	RulesFile          string  `yaml:"rules_file,omitempty" env:"SAND_RULES_FILE"`
	ReserveBoundaryRow bool    `yaml:"reserve_boundary_row" env:"SAND_RESERVE_BOUNDARY_ROW"`
	Workers            int     `yaml:"workers" env:"SAND_WORKERS"`
	BrushRadius        int     `yaml:"brush_radius" env:"SAND_BRUSH_RADIUS"`
}

// WindowConfig holds GUI settings.
type WindowConfig struct {
	Scale    int `yaml:"scale" env:"SAND_SCALE"`
	TPS      int `yaml:"tps" env:"SAND_TPS"`
	HUDWidth int `yaml:"hud_width" env:"SAND_HUD_WIDTH"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	// Level is one of "info", "debug", "trace", "warn" or "error".
	Level string `yaml:"level" env:"SAND_LOG_LEVEL"`
}

// Default returns a Config with the standard sand world and window.
func Default() *Config {
	s := sand.DefaultConfig()
	return &Config{
		Sim: SimConfig{
			Name:               "sand",
			Width:              s.Width,
			Height:             s.Height,
			Seed:               s.Seed,
			Fill:               s.Fill,
			Density:            s.Density,
			Rules:              s.Rules,
			ReserveBoundaryRow: s.ReserveBoundaryRow,
			Workers:            s.Workers,
			BrushRadius:        s.BrushRadius,
		},
		Window: WindowConfig{
			Scale:    5,
			TPS:      60,
			HUDWidth: 220,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration in order: defaults, then the YAML file at
// path when path is non-empty, then SAND_* environment variables. The result
// is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SAND_* environment variables. Unset
// variables leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	s := c.Sim
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("sim size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.ReserveBoundaryRow && s.Height < 2 {
		return fmt.Errorf("sim height must be at least 2 with a reserved boundary row, got %d", s.Height)
	}
	switch s.Fill {
	case sand.FillEmpty, sand.FillAnnulus, sand.FillScatter:
	default:
		return fmt.Errorf("invalid fill: %s (valid: empty, annulus, scatter)", s.Fill)
	}
	if s.Density < 0 || s.Density > 1 {
		return fmt.Errorf("density must be between 0 and 1, got %f", s.Density)
	}
	if s.RulesFile == "" {
		if _, err := rules.Named(s.Rules); err != nil {
			return err
		}
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if s.BrushRadius < 0 || s.BrushRadius > sand.MaxBrushRadius {
		return fmt.Errorf("brush_radius must be between 0 and %d, got %d", sand.MaxBrushRadius, s.BrushRadius)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("window scale must be at least 1, got %d", c.Window.Scale)
	}
	if c.Window.TPS < 1 {
		return fmt.Errorf("window tps must be at least 1, got %d", c.Window.TPS)
	}
	if c.Window.HUDWidth < 0 {
		return fmt.Errorf("hud_width must be non-negative, got %d", c.Window.HUDWidth)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, warn, error, or empty for default)", c.Logging.Level)
	}
	return nil
}

// Values converts the sim settings to the key/value form the sim registry
// accepts.
func (s SimConfig) Values() map[string]string {
	return map[string]string{
		"w":                    strconv.Itoa(s.Width),
		"h":                    strconv.Itoa(s.Height),
		"seed":                 strconv.FormatInt(s.Seed, 10),
		"fill":                 s.Fill,
		"density":              strconv.FormatFloat(s.Density, 'f', -1, 64),
		"rules":                s.Rules,
		"rules_file":           s.RulesFile,
		"reserve_boundary_row": strconv.FormatBool(s.ReserveBoundaryRow),
		"workers":              strconv.Itoa(s.Workers),
		"brush_radius":         strconv.Itoa(s.BrushRadius),
	}
}

// SandConfig converts the sim settings directly into a sand.Config.
func (s SimConfig) SandConfig() sand.Config {
	return sand.Config{
		Width:              s.Width,
		Height:             s.Height,
		Seed:               s.Seed,
		Fill:               s.Fill,
		Density:            s.Density,
		Rules:              s.Rules,
		RulesFile:          s.RulesFile,
		ReserveBoundaryRow: s.ReserveBoundaryRow,
		Workers:            s.Workers,
		BrushRadius:        s.BrushRadius,
	}
}
