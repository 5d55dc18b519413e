package cell

import "strings"

// Pattern is the content of one 2x2 block read in row-major order
// [top-left, top-right, bottom-left, bottom-right]. Position matters.
type Pattern [4]Type

// Uniform returns a pattern with all four cells set to t.
func Uniform(t Type) Pattern { return Pattern{t, t, t, t} }

// Mirror swaps the left and right columns.
func (p Pattern) Mirror() Pattern {
	return Pattern{p[1], p[0], p[3], p[2]}
}

// Codes returns the raw code of each cell in block order.
func (p Pattern) Codes() [4]uint8 {
	return [4]uint8{p[0].Code(), p[1].Code(), p[2].Code(), p[3].Code()}
}

// Valid reports whether every cell holds an enumerated type.
func (p Pattern) Valid() bool {
	for _, t := range p {
		if !t.Valid() {
			return false
		}
	}
	return true
}

// Key packs the pattern into a dense index in [0, Count^4).
func (p Pattern) Key() int {
	return ((int(p[0])*Count+int(p[1]))*Count+int(p[2]))*Count + int(p[3])
}

func (p Pattern) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}
