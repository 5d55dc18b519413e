// Package margolus advances a field.Grid by one generation using the
// Margolus neighborhood: the grid is tiled with 2x2 blocks whose alignment
// alternates between even and odd time steps.
package margolus

import (
	"fmt"

	"sand-ca/internal/cell"
	"sand-ca/internal/field"
)

// Corner identifies which corner of its current block a cell occupies.
type Corner uint8

const (
	TopLeft Corner = iota + 1
	TopRight
	BottomLeft
	BottomRight
)

// Slot is the index of the corner within a cell.Pattern.
func (c Corner) Slot() int { return int(c) - 1 }

// Flip maps a corner onto the offset tiling: TopLeft<->BottomRight and
// TopRight<->BottomLeft.
func (c Corner) Flip() Corner {
	switch c {
	case TopLeft:
		return BottomRight
	case BottomRight:
		return TopLeft
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	}
	panic(fmt.Sprintf("margolus: invalid corner %d", c))
}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("corner(%d)", uint8(c))
}

// Classify returns the corner (row, col) occupies at the given time step.
// Negative coordinates are a programming error and panic.
func Classify(row, col int, step uint64) Corner {
	var c Corner
	switch [2]int{row % 2, col % 2} {
	case [2]int{0, 0}:
		c = TopLeft
	case [2]int{0, 1}:
		c = TopRight
	case [2]int{1, 0}:
		c = BottomLeft
	case [2]int{1, 1}:
		c = BottomRight
	default:
		panic(fmt.Sprintf("margolus: invalid parity for row=%d col=%d", row, col))
	}
	if step%2 == 1 {
		return c.Flip()
	}
	return c
}

// Neighborhood reads the block that (row, col) belongs to as the given
// corner. Each coordinate is clamped to the grid independently.
func Neighborhood(g *field.Grid, c Corner, row, col int) cell.Pattern {
	r, k := row, col
	switch c {
	case TopLeft:
		return block(g, r, k)
	case TopRight:
		return block(g, r, k-1)
	case BottomLeft:
		return block(g, r-1, k)
	case BottomRight:
		return block(g, r-1, k-1)
	}
	panic(fmt.Sprintf("margolus: invalid corner %d", c))
}

// block reads the 2x2 block whose top-left corner is (r, c).
func block(g *field.Grid, r, c int) cell.Pattern {
	return cell.Pattern{
		g.Clamped(r, c),
		g.Clamped(r, c+1),
		g.Clamped(r+1, c),
		g.Clamped(r+1, c+1),
	}
}
