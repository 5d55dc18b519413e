package field

import "sand-ca/internal/cell"

// Chancer is the slice of core.RNG that Scatter needs.
type Chancer interface {
	Chance(p float64) bool
}

// Uniform fills every cell with value.
func Uniform(value cell.Type) func(int) cell.Type {
	return func(int) cell.Type { return value }
}

// Annulus fills a ring centred on the grid with value and leaves the rest
// Empty. Radii are given in normalized [0,1] coordinates.
func Annulus(width, height int, inner, outer float64, value cell.Type) func(int) cell.Type {
	return func(idx int) cell.Type {
		y := float64(idx/width)/float64(height) - 0.5
		x := float64(idx%width)/float64(width) - 0.5
		d2 := x*x + y*y
		if d2 <= outer*outer && d2 >= inner*inner {
			return value
		}
		return cell.Empty
	}
}

// Scatter sets each cell to value with probability p. Cells are visited in
// index order, so the result is deterministic for a seeded source.
func Scatter(rng Chancer, p float64, value cell.Type) func(int) cell.Type {
	return func(int) cell.Type {
		if rng.Chance(p) {
			return value
		}
		return cell.Empty
	}
}
