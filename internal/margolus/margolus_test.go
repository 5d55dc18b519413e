package margolus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sand-ca/internal/cell"
	"sand-ca/internal/field"
	"sand-ca/internal/logging"
	"sand-ca/internal/rules"
)

var (
	E = cell.Empty
	S = cell.Sand
	W = cell.Wall
)

func sandStepper(opts ...Option) *Stepper {
	return New(rules.MustBuild(rules.SandRules()), opts...)
}

func TestClassifyOrigin(t *testing.T) {
	for step := uint64(0); step < 10; step++ {
		got := Classify(0, 0, step)
		want := TopLeft
		if step%2 == 1 {
			want = BottomRight
		}
		if got != want {
			t.Fatalf("Classify(0,0,%d)=%v, want %v", step, got, want)
		}
	}
}

func TestClassifyParity(t *testing.T) {
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			for step := uint64(0); step < 4; step++ {
				a := Classify(row, col, step)
				if b := Classify(row, col, step+2); a != b {
					t.Fatalf("(%d,%d) step %d=%v, step+2=%v", row, col, step, a, b)
				}
				if b := Classify(row, col, step+1); b != a.Flip() {
					t.Fatalf("(%d,%d) step %d=%v, step+1=%v, want %v", row, col, step, a, b, a.Flip())
				}
			}
		}
	}
	if got := Classify(2, 3, 0); got != TopRight {
		t.Fatalf("Classify(2,3,0)=%v", got)
	}
	if got := Classify(3, 2, 0); got != BottomLeft {
		t.Fatalf("Classify(3,2,0)=%v", got)
	}
}

func TestClassifyPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("negative row must panic")
		}
	}()
	Classify(-1, 0, 0)
}

func TestCornerSlots(t *testing.T) {
	for i, c := range []Corner{TopLeft, TopRight, BottomLeft, BottomRight} {
		if c.Slot() != i {
			t.Fatalf("%v slot=%d, want %d", c, c.Slot(), i)
		}
		if c.Flip().Flip() != c {
			t.Fatalf("%v flip is not an involution", c)
		}
	}
}

func TestNeighborhoodSmallField(t *testing.T) {
	for _, reserved := range []bool{false, true} {
		g, err := field.NewUniform(2, 3, cell.Sand, field.WithReservedBoundaryRow(reserved))
		if err != nil {
			t.Fatal(err)
		}
		g.Toggle(0, 0)
		g.Toggle(1, 1)

		c := Classify(0, 0, 0)
		got := Neighborhood(g, c, 0, 0)
		if want := (cell.Pattern{E, S, S, E}); got != want {
			t.Fatalf("reserved=%v neighborhood=%v, want %v", reserved, got, want)
		}
	}
}

func TestNeighborhoodAnnulusCorner(t *testing.T) {
	g, err := field.New(32, 32, field.Annulus(32, 32, 0.2, 0.3, cell.Sand))
	if err != nil {
		t.Fatal(err)
	}
	got := Neighborhood(g, Classify(0, 0, 0), 0, 0)
	if got != cell.Uniform(cell.Empty) {
		t.Fatalf("corner neighborhood=%v", got)
	}
}

func TestNeighborhoodSameBlockFromEveryCorner(t *testing.T) {
	g, err := field.Parse(`
		o.#.
		~o..
		..#o
	`)
	if err != nil {
		t.Fatal(err)
	}
	want := cell.Pattern{S, E, cell.Water, S}
	for _, pos := range []struct {
		c        Corner
		row, col int
	}{
		{TopLeft, 0, 0},
		{TopRight, 0, 1},
		{BottomLeft, 1, 0},
		{BottomRight, 1, 1},
	} {
		if got := Neighborhood(g, pos.c, pos.row, pos.col); got != want {
			t.Fatalf("%v at (%d,%d)=%v, want %v", pos.c, pos.row, pos.col, got, want)
		}
	}
}

func TestNeighborhoodClampsAtEdges(t *testing.T) {
	g, err := field.Parse(`
		o.#
		.~.
	`)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		c        Corner
		row, col int
		want     cell.Pattern
	}{
		// Everything above and left of the origin repeats the origin.
		{BottomRight, 0, 0, cell.Uniform(S)},
		// Right edge repeats the last column.
		{TopLeft, 0, 2, cell.Pattern{W, W, E, E}},
		// Bottom-right corner repeats the last row and column.
		{TopLeft, 1, 2, cell.Pattern{E, E, E, E}},
		{BottomLeft, 0, 1, cell.Pattern{E, W, E, W}},
	}
	for _, tc := range cases {
		if got := Neighborhood(g, tc.c, tc.row, tc.col); got != tc.want {
			t.Fatalf("%v at (%d,%d)=%v, want %v", tc.c, tc.row, tc.col, got, tc.want)
		}
	}
}

func TestAdvanceUsesFrozenSnapshot(t *testing.T) {
	for _, reserved := range []bool{false, true} {
		g, err := field.NewUniform(4, 5, cell.Empty, field.WithReservedBoundaryRow(reserved))
		if err != nil {
			t.Fatal(err)
		}
		g.Toggle(1, 1)
		g.Toggle(2, 2)

		sandStepper().Advance(g, 1)

		got := Neighborhood(g, Classify(1, 1, 1), 1, 1)
		if want := (cell.Pattern{E, E, S, S}); got != want {
			t.Fatalf("reserved=%v neighborhood=%v, want %v\n%s", reserved, got, want, g)
		}
		if n := g.Count(cell.Sand); n != 2 {
			t.Fatalf("reserved=%v sand count=%d, want 2", reserved, n)
		}
	}
}

func TestGrainFallsAndRestsOnBoundary(t *testing.T) {
	g, err := field.NewUniform(3, 5, cell.Empty, field.WithReservedBoundaryRow(true))
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 1, cell.Sand)
	s := sandStepper()

	path := [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 1}}
	for step, want := range path {
		changed := s.Advance(g, uint64(step))
		if g.Get(want[0], want[1]) != cell.Sand {
			t.Fatalf("after step %d grain not at %v:\n%s", step, want, g)
		}
		if step < 3 && changed != 2 {
			t.Fatalf("step %d changed %d cells, want 2", step, changed)
		}
	}
	for step := uint64(4); step < 20; step++ {
		if changed := s.Advance(g, step); changed != 0 {
			t.Fatalf("settled grid changed %d cells at step %d:\n%s", changed, step, g)
		}
	}
	want := "...\n...\n...\n.o.\n###\n"
	if diff := cmp.Diff(want, g.String()); diff != "" {
		t.Fatalf("final grid (-want +got):\n%s", diff)
	}
}

func TestPackedColumnIsStable(t *testing.T) {
	g, err := field.Parse(`
		....
		.oo.
		.oo.
		####
	`, field.WithReservedBoundaryRow(true))
	if err != nil {
		t.Fatal(err)
	}
	before := g.String()
	s := sandStepper()
	for step := uint64(0); step < 8; step++ {
		s.Advance(g, step)
	}
	if diff := cmp.Diff(before, g.String()); diff != "" {
		t.Fatalf("supported square moved (-before +after):\n%s", diff)
	}
}

func conservationGrid(t *testing.T) *field.Grid {
	t.Helper()
	g, err := field.New(17, 13, func(idx int) cell.Type {
		row := idx / 17
		switch {
		case row < 2:
			return cell.Empty
		case (idx*7)%5 == 0:
			return cell.Sand
		case row == 9 && idx%3 == 0:
			return cell.Wall
		}
		return cell.Empty
	}, field.WithReservedBoundaryRow(true))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestAdvanceConservesSand(t *testing.T) {
	g := conservationGrid(t)
	want := g.Count(cell.Sand)
	walls := g.Count(cell.Wall)
	s := sandStepper()
	for step := uint64(0); step < 60; step++ {
		s.Advance(g, step)
		if got := g.Count(cell.Sand); got != want {
			t.Fatalf("step %d sand=%d, want %d\n%s", step, got, want, g)
		}
		if got := g.Count(cell.Wall); got != walls {
			t.Fatalf("step %d walls=%d, want %d", step, got, walls)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := conservationGrid(t)
	par := seq.Clone()

	s1 := sandStepper()
	s4 := sandStepper(WithWorkers(4))
	if s4.Workers() != 4 {
		t.Fatalf("workers=%d", s4.Workers())
	}
	for step := uint64(0); step < 40; step++ {
		c1 := s1.Advance(seq, step)
		c4 := s4.Advance(par, step)
		if c1 != c4 {
			t.Fatalf("step %d changed %d sequential vs %d parallel", step, c1, c4)
		}
		if diff := cmp.Diff(seq.Cells(), par.Cells()); diff != "" {
			t.Fatalf("step %d grids diverged (-seq +par):\n%s", step, diff)
		}
	}
}

func TestMoreWorkersThanRows(t *testing.T) {
	g, err := field.NewUniform(3, 3, cell.Empty, field.WithReservedBoundaryRow(true))
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, cell.Sand)
	sandStepper(WithWorkers(16)).Advance(g, 0)
	if g.Get(1, 0) != cell.Sand {
		t.Fatalf("grain did not fall:\n%s", g)
	}
	if sandStepper(WithWorkers(0)).Workers() != 1 {
		t.Fatal("non-positive worker count must fall back to 1")
	}
}

func TestAdvanceTracesRules(t *testing.T) {
	var buf bytes.Buffer
	s := sandStepper(WithLogger(logging.NewLogger("trace", &buf)))
	g, err := field.NewUniform(2, 3, cell.Empty, field.WithReservedBoundaryRow(true))
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, cell.Sand)
	s.Advance(g, 0)
	out := buf.String()
	if !strings.Contains(out, "rule applied") || !strings.Contains(out, "level=TRACE") {
		t.Fatalf("missing trace output: %q", out)
	}
}
