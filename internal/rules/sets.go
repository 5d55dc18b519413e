package rules

import (
	"fmt"
	"sort"

	"sand-ca/internal/cell"
)

const (
	empty = cell.Empty
	sand  = cell.Sand
	wall  = cell.Wall
	water = cell.Water
)

type pat = cell.Pattern

// SandRules returns the canonical granular rules. Mirrors are added by Build.
func SandRules() []Rule {
	return []Rule{
		// * .
		// . .
		{Name: "fall", Pattern: pat{sand, empty, empty, empty}, Replacement: pat{empty, empty, sand, empty}},
		// * *
		// * .
		{Name: "slide-corner", Pattern: pat{sand, sand, sand, empty}, Replacement: pat{sand, empty, sand, sand}},
		// * *
		// . .
		{Name: "fall-pair", Pattern: pat{sand, sand, empty, empty}, Replacement: pat{empty, empty, sand, sand}},
		// * .
		// . *
		{Name: "slide-diagonal", Pattern: pat{sand, empty, empty, sand}, Replacement: pat{empty, empty, sand, sand}},
		// * .
		// * .
		{Name: "topple", Pattern: pat{sand, empty, sand, empty}, Replacement: pat{empty, empty, sand, sand}},
		// * W
		// . .
		{Name: "fall-by-wall", Pattern: pat{sand, wall, empty, empty}, Replacement: pat{empty, wall, sand, empty}},
		// * W
		// . W
		{Name: "fall-in-channel", Pattern: pat{sand, wall, empty, wall}, Replacement: pat{empty, wall, sand, wall}},
		// * .
		// . W
		{Name: "fall-past-wall", Pattern: pat{sand, empty, empty, wall}, Replacement: pat{empty, empty, sand, wall}},
		// * .
		// W .
		{Name: "slide-off-wall", Pattern: pat{sand, empty, wall, empty}, Replacement: pat{empty, empty, wall, sand}},
	}
}

// WaterRules returns the liquid rules layered on top of SandRules.
func WaterRules() []Rule {
	return []Rule{
		{Name: "water-fall", Pattern: pat{water, empty, empty, empty}, Replacement: pat{empty, empty, water, empty}},
		{Name: "water-fall-pair", Pattern: pat{water, water, empty, empty}, Replacement: pat{empty, empty, water, water}},
		{Name: "water-topple", Pattern: pat{water, empty, water, empty}, Replacement: pat{empty, empty, water, water}},
		{Name: "water-slide-diagonal", Pattern: pat{water, empty, empty, water}, Replacement: pat{empty, empty, water, water}},
		{Name: "water-slide-corner", Pattern: pat{water, water, water, empty}, Replacement: pat{water, empty, water, water}},
		{Name: "water-flow-on-wall", Pattern: pat{water, empty, wall, wall}, Replacement: pat{empty, water, wall, wall}},
		{Name: "water-flow-on-water", Pattern: pat{water, empty, water, water}, Replacement: pat{empty, water, water, water}},
		{Name: "water-flow-on-sand", Pattern: pat{water, empty, sand, sand}, Replacement: pat{empty, water, sand, sand}},
		{Name: "water-slide-off-wall", Pattern: pat{water, empty, wall, empty}, Replacement: pat{empty, empty, wall, water}},
		{Name: "sand-sinks", Pattern: pat{sand, empty, water, empty}, Replacement: pat{water, empty, sand, empty}},
		{Name: "sand-sinks-pair", Pattern: pat{sand, sand, water, water}, Replacement: pat{water, water, sand, sand}},
	}
}

// DefaultSet names the rule set used when none is configured.
const DefaultSet = "sand"

var sets = map[string]func() []Rule{
	"sand": SandRules,
	"sand+water": func() []Rule {
		return append(SandRules(), WaterRules()...)
	},
}

// Named returns the authored rules of a shipped set.
func Named(name string) ([]Rule, error) {
	if name == "" {
		name = DefaultSet
	}
	f, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule set %q (valid: %v)", name, SetNames())
	}
	return f(), nil
}

// SetNames lists the shipped rule sets in sorted order.
func SetNames() []string {
	out := make([]string, 0, len(sets))
	for name := range sets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
