package app

import (
	"testing"

	"sand-ca/internal/core"
)

func TestCellAt(t *testing.T) {
	size := core.Size{W: 10, H: 8}
	cases := []struct {
		mx, my, scale int
		x, y          int
		ok            bool
	}{
		{0, 0, 4, 0, 0, true},
		{39, 31, 4, 9, 7, true},
		{40, 0, 4, 0, 0, false},
		{0, 32, 4, 0, 0, false},
		{-1, 5, 4, 0, 0, false},
		{5, 5, 0, 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := cellAt(tc.mx, tc.my, tc.scale, size)
		if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
			t.Fatalf("cellAt(%d,%d,%d)=(%d,%d,%v), want (%d,%d,%v)",
				tc.mx, tc.my, tc.scale, x, y, ok, tc.x, tc.y, tc.ok)
		}
	}
}

func TestOptionsNormalized(t *testing.T) {
	o := Options{Scale: 0, HUDWidth: -5}.normalized()
	if o.Scale != 1 || o.HUDWidth != 0 || o.MaxBrushRadius != 1 {
		t.Fatalf("normalized=%+v", o)
	}
}

func TestHelpLinesListMaterials(t *testing.T) {
	lines := helpLines([]string{"empty", "sand", "wall", "water", "extra"})
	last := lines[len(lines)-1]
	if last != "4 water" {
		t.Fatalf("last help line=%q", last)
	}
	if hudControls(32)[0].Max != 32 {
		t.Fatal("brush control must use the provided max")
	}
}
