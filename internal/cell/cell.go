// Package cell defines the materials a grid cell can hold and the 2x2
// patterns the Margolus rules operate on.
package cell

import (
	"fmt"
	"image/color"
	"strings"
)

// Type enumerates the material kinds a cell may hold.
type Type uint8

// The order of these constants is the stable encoding order: renderers index
// palettes and codes by it, so new materials are only ever appended.
const (
	Empty Type = iota
	Sand
	Wall
	Water
)

// Count is the number of cell types.
const Count = 4

var all = [Count]Type{Empty, Sand, Wall, Water}

var names = [Count]string{"empty", "sand", "wall", "water"}

var colors = [Count]color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 168, G: 134, B: 42, A: 255},
	{R: 148, G: 148, B: 148, A: 255},
	{R: 103, G: 133, B: 193, A: 255},
}

// All returns every cell type in encoding order.
func All() []Type {
	out := make([]Type, Count)
	copy(out, all[:])
	return out
}

// Valid reports whether t is one of the enumerated types.
func (t Type) Valid() bool { return int(t) < Count }

// Code returns the raw per-cell code used by byte encodings.
func (t Type) Code() uint8 { return uint8(t) }

// PaletteSlot returns the normalized palette coordinate of t, the centre of
// its slot in a palette texture Count texels wide.
func (t Type) PaletteSlot() float32 {
	return (float32(t) + 0.5) / float32(Count)
}

// PackRGBA encodes t as a single RGBA float texel.
func (t Type) PackRGBA() [4]float32 {
	return [4]float32{t.PaletteSlot(), 0, 0, 0}
}

// Color returns the display color for t.
func (t Type) Color() color.RGBA {
	if !t.Valid() {
		return color.RGBA{}
	}
	return colors[t]
}

// Hex formats the display color as #rrggbb.
func (t Type) Hex() string {
	c := t.Color()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("cell(%d)", uint8(t))
	}
	return names[t]
}

// Palette returns the display colors in encoding order.
func Palette() []color.RGBA {
	out := make([]color.RGBA, Count)
	copy(out, colors[:])
	return out
}

// Parse resolves a material name, case-insensitively.
func Parse(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == key {
			return Type(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown cell type %q", name)
}
