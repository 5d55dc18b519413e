package cell

import "testing"

func TestAllOrderStable(t *testing.T) {
	got := All()
	want := []Type{Empty, Sand, Wall, Water}
	if len(got) != len(want) {
		t.Fatalf("All() len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All()[%d]=%v, want %v", i, got[i], want[i])
		}
	}
	got[0] = Wall
	if All()[0] != Empty {
		t.Fatal("All must return a copy")
	}
}

func TestCodesInjective(t *testing.T) {
	seenCode := map[uint8]Type{}
	seenSlot := map[float32]Type{}
	for _, c := range All() {
		if prev, ok := seenCode[c.Code()]; ok {
			t.Fatalf("code %d shared by %v and %v", c.Code(), prev, c)
		}
		seenCode[c.Code()] = c
		if prev, ok := seenSlot[c.PaletteSlot()]; ok {
			t.Fatalf("palette slot shared by %v and %v", prev, c)
		}
		seenSlot[c.PaletteSlot()] = c
	}
}

func TestPaletteSlot(t *testing.T) {
	if got := Empty.PaletteSlot(); got != 0.125 {
		t.Fatalf("Empty slot=%f, want 0.125", got)
	}
	if got := Water.PackRGBA(); got != [4]float32{0.875, 0, 0, 0} {
		t.Fatalf("Water PackRGBA=%v", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, c := range All() {
		got, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("Parse(%q)=%v", c.String(), got)
		}
	}
	if _, err := Parse(" SAND "); err != nil {
		t.Fatalf("Parse should ignore case and space: %v", err)
	}
	if _, err := Parse("lava"); err == nil {
		t.Fatal("expected error for unknown material")
	}
}

func TestHex(t *testing.T) {
	if got := Sand.Hex(); got != "#a8862a" {
		t.Fatalf("Sand.Hex()=%s", got)
	}
}

func TestPatternMirror(t *testing.T) {
	p := Pattern{Sand, Wall, Empty, Water}
	if got := p.Mirror(); got != (Pattern{Wall, Sand, Water, Empty}) {
		t.Fatalf("Mirror()=%v", got)
	}
	if p.Mirror().Mirror() != p {
		t.Fatal("mirroring twice must restore the pattern")
	}
}

func TestPatternKeyDense(t *testing.T) {
	seen := make(map[int]bool)
	for _, a := range All() {
		for _, b := range All() {
			for _, c := range All() {
				for _, d := range All() {
					k := Pattern{a, b, c, d}.Key()
					if k < 0 || k >= Count*Count*Count*Count {
						t.Fatalf("key %d out of range", k)
					}
					if seen[k] {
						t.Fatalf("duplicate key %d", k)
					}
					seen[k] = true
				}
			}
		}
	}
}
