package sand

import "sand-ca/internal/cell"

// MaxBrushRadius bounds SetRadius.
const MaxBrushRadius = 32

// Materials lists the paintable materials in palette order.
func (w *World) Materials() []string {
	all := cell.All()
	out := make([]string, len(all))
	for i, t := range all {
		out[i] = t.String()
	}
	return out
}

// Material is the palette index of the current brush material.
func (w *World) Material() int { return int(w.material) }

// SetMaterial selects the brush material by palette index. Invalid indices
// are ignored.
func (w *World) SetMaterial(i int) {
	if i < 0 || i >= cell.Count {
		return
	}
	w.material = cell.Type(i)
}

// Radius is the brush radius in cells.
func (w *World) Radius() int { return w.radius }

// SetRadius clamps r to [0, MaxBrushRadius].
func (w *World) SetRadius(r int) {
	switch {
	case r < 0:
		r = 0
	case r > MaxBrushRadius:
		r = MaxBrushRadius
	}
	w.radius = r
}

// PaintAt paints a disc at grid coordinates (x, y) and returns the number of
// cells written. Cells on the reserved boundary row are never touched.
func (w *World) PaintAt(x, y int, erase bool) int {
	v := w.material
	if erase {
		v = cell.Empty
	}
	n := w.grid.Paint(y, x, w.radius, v)
	if n > 0 {
		w.quietTicks = 0
	}
	return n
}
