package sand

import (
	"sand-ca/internal/cell"
	"sand-ca/internal/core"
)

// Parameters describes the world for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	rulesName := w.cfg.Rules
	if w.cfg.RulesFile != "" {
		rulesName = w.cfg.RulesFile
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "World",
				Params: []core.Parameter{
					core.IntParam("w", "Width", w.grid.Width()),
					core.IntParam("h", "Height", w.grid.Height()),
					core.BoolParam("reserve_boundary_row", "Boundary row", w.grid.BoundaryRowReserved()),
					core.StringParam("rules", "Rules", rulesName),
					core.IntParam("rule_count", "Expanded rules", w.table.Len()),
				},
			},
			{
				Name: "Brush",
				Params: []core.Parameter{
					core.StringParam("material", "Material", cell.Type(w.Material()).String()),
					core.IntParam("brush_radius", "Radius", w.radius),
				},
			},
			{
				Name: "Stepping",
				Params: []core.Parameter{
					core.Uint64Param("tick", "Tick", w.tick),
					core.IntParam("changed", "Changed", w.lastChanged),
					core.IntParam("workers", "Workers", w.stepper.Workers()),
				},
			},
		},
	}
}

// SetIntParameter updates the brush radius or material from the HUD.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_radius":
		w.SetRadius(value)
		return true
	case "material":
		if value < 0 || value >= cell.Count {
			return false
		}
		w.SetMaterial(value)
		return true
	}
	return false
}
