// Package field owns the 2D cell grid the automaton evolves.
package field

import (
	"errors"
	"fmt"
	"strings"

	"sand-ca/internal/cell"
)

// ErrInvalidDimensions is returned when a grid would have no cells.
var ErrInvalidDimensions = errors.New("field: invalid dimensions")

// Grid stores cells in row-major order: index = row*width + col.
type Grid struct {
	width, height int
	reserved      bool

	cur []cell.Type
	nxt []cell.Type
}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithReservedBoundaryRow keeps the last row as a permanent Wall row. It is
// read by neighborhoods but never stepped or edited.
func WithReservedBoundaryRow(reserved bool) Option {
	return func(g *Grid) { g.reserved = reserved }
}

// New builds a grid, calling fill once per linear index.
func New(width, height int, fill func(idx int) cell.Type, opts ...Option) (*Grid, error) {
	g := &Grid{width: width, height: height}
	for _, opt := range opts {
		opt(g)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if g.reserved && height < 2 {
		return nil, fmt.Errorf("%w: %dx%d leaves no playable row", ErrInvalidDimensions, width, height)
	}

	total := width * height
	g.cur = make([]cell.Type, total)
	g.nxt = make([]cell.Type, total)
	live := width * g.PlayableHeight()
	for i := 0; i < live; i++ {
		g.cur[i] = fill(i)
	}
	for i := live; i < total; i++ {
		g.cur[i] = cell.Wall
	}
	return g, nil
}

// NewUniform builds a grid where every playable cell holds value.
func NewUniform(width, height int, value cell.Type, opts ...Option) (*Grid, error) {
	return New(width, height, Uniform(value), opts...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows, including a reserved boundary row.
func (g *Grid) Height() int { return g.height }

// BoundaryRowReserved reports whether the last row is a fixed Wall row.
func (g *Grid) BoundaryRowReserved() bool { return g.reserved }

// PlayableHeight is the number of rows that are stepped and editable.
func (g *Grid) PlayableHeight() int {
	if g.reserved {
		return g.height - 1
	}
	return g.height
}

// Index returns the linear index of (row, col).
func (g *Grid) Index(row, col int) int { return row*g.width + col }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Editable reports whether (row, col) is a playable cell.
func (g *Grid) Editable(row, col int) bool {
	return row >= 0 && row < g.PlayableHeight() && col >= 0 && col < g.width
}

func (g *Grid) mustIndex(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("field: (%d,%d) outside %dx%d grid", row, col, g.width, g.height))
	}
	return g.Index(row, col)
}

// Get returns the cell at (row, col). Out-of-range access panics.
func (g *Grid) Get(row, col int) cell.Type {
	return g.cur[g.mustIndex(row, col)]
}

// Set writes value at (row, col). Out-of-range access panics; writes to the
// reserved boundary row are ignored.
func (g *Grid) Set(row, col int, value cell.Type) {
	idx := g.mustIndex(row, col)
	if !g.Editable(row, col) {
		return
	}
	g.cur[idx] = value
}

// Toggle flips a cell between Empty and Sand: anything non-empty becomes
// Empty, Empty becomes Sand.
func (g *Grid) Toggle(row, col int) {
	if g.Get(row, col) != cell.Empty {
		g.Set(row, col, cell.Empty)
		return
	}
	g.Set(row, col, cell.Sand)
}

// ApplyEdit is the host-facing form of Set. Edits outside the playable area
// are dropped and reported as false.
func (g *Grid) ApplyEdit(row, col int, value cell.Type) bool {
	if !g.Editable(row, col) || !value.Valid() {
		return false
	}
	g.cur[g.Index(row, col)] = value
	return true
}

// Paint fills the disc of the given radius centred on (row, col) and returns
// the number of cells written. Cells outside the playable area are skipped.
func (g *Grid) Paint(row, col, radius int, value cell.Type) int {
	if radius < 0 {
		return 0
	}
	painted := 0
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			if g.ApplyEdit(row+dy, col+dx, value) {
				painted++
			}
		}
	}
	return painted
}

// Clamped reads (row, col) after clamping both coordinates to the grid, so
// reads past an edge repeat the nearest edge cell.
func (g *Grid) Clamped(row, col int) cell.Type {
	row = clamp(row, 0, g.height-1)
	col = clamp(col, 0, g.width-1)
	return g.cur[g.Index(row, col)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cells exposes the current generation. Callers must not modify it.
func (g *Grid) Cells() []cell.Type { return g.cur }

// Next returns the back buffer seeded with the current generation. Writers
// fill it and call Commit; reads through the grid keep seeing the current
// generation until then.
func (g *Grid) Next() []cell.Type {
	copy(g.nxt, g.cur)
	return g.nxt
}

// Commit makes the back buffer the current generation.
func (g *Grid) Commit() {
	g.cur, g.nxt = g.nxt, g.cur
}

// Count returns how many cells hold value.
func (g *Grid) Count(value cell.Type) int {
	n := 0
	for _, c := range g.cur {
		if c == value {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		width:    g.width,
		height:   g.height,
		reserved: g.reserved,
		cur:      append([]cell.Type(nil), g.cur...),
		nxt:      make([]cell.Type, len(g.nxt)),
	}
	return out
}

// String renders the grid one row per line: '.' empty, 'o' sand, '#' wall,
// '~' water.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			b.WriteByte(glyph(g.cur[g.Index(row, col)]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(t cell.Type) byte {
	switch t {
	case cell.Empty:
		return '.'
	case cell.Sand:
		return 'o'
	case cell.Wall:
		return '#'
	case cell.Water:
		return '~'
	default:
		return '?'
	}
}

// Parse builds a grid from the String form. Every line must have the same
// width. It is mainly used to write readable test fixtures.
func Parse(s string, opts ...Option) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	width := len(lines[0])
	var cells []cell.Type
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("field: line %d has width %d, want %d", i, len(line), width)
		}
		for j := 0; j < len(line); j++ {
			t, ok := fromGlyph(line[j])
			if !ok {
				return nil, fmt.Errorf("field: unknown glyph %q at line %d", line[j], i)
			}
			cells = append(cells, t)
		}
	}
	return New(width, len(lines), func(idx int) cell.Type { return cells[idx] }, opts...)
}

func fromGlyph(b byte) (cell.Type, bool) {
	switch b {
	case '.':
		return cell.Empty, true
	case 'o':
		return cell.Sand, true
	case '#':
		return cell.Wall, true
	case '~':
		return cell.Water, true
	}
	return cell.Empty, false
}
