package sand

import (
	"strconv"
	"strings"

	"sand-ca/internal/rules"
)

// Fill names the initial layouts Reset can produce.
const (
	FillEmpty   = "empty"
	FillAnnulus = "annulus"
	FillScatter = "scatter"
)

// Config controls the sand simulation.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Fill selects the initial layout. Density is the per-cell probability
	// used by FillScatter.
	Fill    string
	Density float64

	// Rules names a built-in rule set. RulesFile, when set, loads an authored
	// YAML rule list instead.
	Rules     string
	RulesFile string

	// ReserveBoundaryRow keeps the last row as a fixed Wall floor.
	ReserveBoundaryRow bool

	Workers     int
	BrushRadius int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:              128,
		Height:             96,
		Seed:               1337,
		Fill:               FillAnnulus,
		Density:            0.25,
		Rules:              rules.DefaultSet,
		ReserveBoundaryRow: true,
		Workers:            1,
		BrushRadius:        2,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		switch f := strings.ToLower(strings.TrimSpace(v)); f {
		case FillEmpty, FillAnnulus, FillScatter:
			c.Fill = f
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["rules"]; ok && v != "" {
		c.Rules = v
	}
	if v, ok := cfg["rules_file"]; ok {
		c.RulesFile = v
	}
	if v, ok := cfg["reserve_boundary_row"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ReserveBoundaryRow = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BrushRadius = parsed
		}
	}
	return c
}
