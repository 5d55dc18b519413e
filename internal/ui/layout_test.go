package ui

import (
	"testing"

	"sand-ca/internal/core"
)

type namedSim struct{ name string }

func (s namedSim) Name() string  { return s.name }
func (namedSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (namedSim) Reset(int64)     {}
func (namedSim) Step()           {}
func (namedSim) Cells() []uint8  { return []uint8{0} }

func snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Brush", Params: []core.Parameter{
			core.IntParam("brush_radius", "Radius", 3),
			core.StringParam("material", "Material", "sand"),
		}},
		{Name: "Stepping", Params: []core.Parameter{
			core.Uint64Param("tick", "Tick", 12),
		}},
	}}
}

func TestControlLayoutAndHit(t *testing.T) {
	states := newControlStates([]Control{
		{Key: "brush_radius", Label: "Radius", Min: 0, Max: 8},
		{Key: "workers", Label: "Workers", Min: 1, Max: 4},
	}, 200)
	if states[1].top-states[0].top != lineHeight {
		t.Fatalf("rows not spaced by lineHeight: %d, %d", states[0].top, states[1].top)
	}
	p := states[0].plusRect
	if p.Max.X != 200-panelPadding {
		t.Fatalf("plus button not right-aligned: %v", p)
	}
	i, dir, ok := hit(states, p.Min.X+1, p.Min.Y+1)
	if !ok || i != 0 || dir != 1 {
		t.Fatalf("hit plus = %d,%d,%v", i, dir, ok)
	}
	m := states[1].minusRect
	i, dir, ok = hit(states, m.Min.X, m.Min.Y)
	if !ok || i != 1 || dir != -1 {
		t.Fatalf("hit minus = %d,%d,%v", i, dir, ok)
	}
	if _, _, ok := hit(states, 0, 0); ok {
		t.Fatal("origin must miss every button")
	}
}

func TestRefreshAndTarget(t *testing.T) {
	states := newControlStates([]Control{
		{Key: "brush_radius", Label: "Radius", Min: 0, Max: 4},
		{Key: "missing", Label: "Missing"},
	}, 200)
	refresh(states, snapshot())
	if !states[0].hasValue || states[0].value != 3 {
		t.Fatalf("radius state=%+v", states[0])
	}
	if states[1].hasValue {
		t.Fatal("missing key must have no value")
	}
	if v, ok := states[0].target(1); !ok || v != 4 {
		t.Fatalf("target(+1)=%d,%v", v, ok)
	}
	states[0].value = 4
	if _, ok := states[0].target(1); ok {
		t.Fatal("target past max must be a no-op")
	}
	states[0].value = 0
	if _, ok := states[0].target(-1); ok {
		t.Fatal("target below min must be a no-op")
	}
	if _, ok := states[1].target(1); ok {
		t.Fatal("control without value must not adjust")
	}
}

func TestInfoLinesSkipsControls(t *testing.T) {
	states := newControlStates([]Control{{Key: "brush_radius"}}, 100)
	got := infoLines(snapshot(), states)
	want := []string{"Brush", "  Material: sand", "Stepping", "  Tick: 12"}
	if len(got) != len(want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildTitle(t *testing.T) {
	if got := buildTitle(namedSim{name: "sand"}); got != "Sand Controls" {
		t.Fatalf("title=%q", got)
	}
	if got := buildTitle(nil); got != "Controls" {
		t.Fatalf("nil title=%q", got)
	}
	if got := buildTitle(namedSim{}); got != "Controls" {
		t.Fatalf("empty title=%q", got)
	}
}
