// Package core defines the contract between automata and the hosts that
// drive and display them.
package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Cells returns one display code per cell in row-major order.
	Cells() []uint8
}

// Palettized is implemented by sims whose display codes index a palette.
type Palettized interface {
	Palette() []color.RGBA
}

// Brush is implemented by sims that accept painting from the host. Material
// indexes the sim's palette.
type Brush interface {
	Materials() []string
	Material() int
	SetMaterial(i int)
	Radius() int
	SetRadius(r int)
	// PaintAt paints with the current material and radius at grid
	// coordinates (x, y). erase paints the empty material instead.
	PaintAt(x, y int, erase bool) int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
