package app

import (
	"log/slog"

	"sand-ca/internal/core"
	"sand-ca/internal/ui"
)

// Options configures a Game.
type Options struct {
	Scale    int
	HUDWidth int
	Seed     int64
	Logger   *slog.Logger

	// MaxBrushRadius bounds the HUD brush radius control.
	MaxBrushRadius int
}

// materialLabels names the number keys that pick brush materials.
var materialLabels = []string{"1", "2", "3", "4"}

func (o Options) normalized() Options {
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.HUDWidth < 0 {
		o.HUDWidth = 0
	}
	if o.MaxBrushRadius < 1 {
		o.MaxBrushRadius = 1
	}
	return o
}

// cellAt maps a cursor position in screen pixels to grid coordinates.
func cellAt(mx, my, scale int, size core.Size) (x, y int, ok bool) {
	if scale < 1 || mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y = mx/scale, my/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// hudControls lists the parameters the panel can step with buttons.
func hudControls(brushMax int) []ui.Control {
	return []ui.Control{
		{Key: "brush_radius", Label: "Brush radius", Step: 1, Min: 0, Max: brushMax},
	}
}

// helpLines describes the keyboard and mouse bindings.
func helpLines(materials []string) []string {
	lines := []string{
		"LMB paint  RMB erase",
		"[ ] radius",
		"Space pause  N tick",
		"R reset  S reseed",
	}
	for i, m := range materials {
		if i >= len(materialLabels) {
			break
		}
		lines = append(lines, materialLabels[i]+" "+m)
	}
	return lines
}
