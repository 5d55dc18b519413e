package field

import (
	"encoding/binary"
	"math"

	"sand-ca/internal/cell"
)

// Encoding writes one fixed-size record per cell for a renderer.
type Encoding interface {
	// RecordSize is the number of bytes written per cell.
	RecordSize() int
	// Encode writes the record for t into dst[:RecordSize()].
	Encode(dst []byte, t cell.Type)
}

// CodeEncoding writes the raw cell code as a single byte.
type CodeEncoding struct{}

func (CodeEncoding) RecordSize() int { return 1 }

func (CodeEncoding) Encode(dst []byte, t cell.Type) { dst[0] = t.Code() }

// Code32Encoding writes the raw cell code as a little-endian uint32.
type Code32Encoding struct{}

func (Code32Encoding) RecordSize() int { return 4 }

func (Code32Encoding) Encode(dst []byte, t cell.Type) {
	binary.LittleEndian.PutUint32(dst, uint32(t.Code()))
}

// PaletteEncoding writes the RGBA float texel of cell.Type.PackRGBA as four
// little-endian float32 values.
type PaletteEncoding struct{}

func (PaletteEncoding) RecordSize() int { return 16 }

func (PaletteEncoding) Encode(dst []byte, t cell.Type) {
	px := t.PackRGBA()
	for i, v := range px {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
}

// Export encodes the grid in row-major order without modifying it.
func (g *Grid) Export(enc Encoding) []byte {
	size := enc.RecordSize()
	out := make([]byte, len(g.cur)*size)
	for i, c := range g.cur {
		enc.Encode(out[i*size:(i+1)*size], c)
	}
	return out
}

// PackRGBA returns the float palette encoding of every cell.
func (g *Grid) PackRGBA() [][4]float32 {
	out := make([][4]float32, len(g.cur))
	for i, c := range g.cur {
		out[i] = c.PackRGBA()
	}
	return out
}

// Codes writes the raw code of every cell into dst, growing it if needed,
// and returns it.
func (g *Grid) Codes(dst []uint8) []uint8 {
	if cap(dst) < len(g.cur) {
		dst = make([]uint8, len(g.cur))
	}
	dst = dst[:len(g.cur)]
	for i, c := range g.cur {
		dst[i] = c.Code()
	}
	return dst
}
