package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sand-ca/internal/cell"
)

func TestFillPaletteUsesCellColours(t *testing.T) {
	cells := []uint8{cell.Empty.Code(), cell.Sand.Code(), cell.Wall.Code(), cell.Water.Code()}
	buf := make([]byte, 4*len(cells))
	FillPalette(buf, cells, cell.Palette())

	want := []byte{
		0, 0, 0, 255,
		168, 134, 42, 255,
		148, 148, 148, 255,
		103, 133, 193, 255,
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels (-want +got):\n%s", diff)
	}
}

func TestFillPaletteClampsCodes(t *testing.T) {
	buf := make([]byte, 4)
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	FillPalette(buf, []uint8{9}, palette)
	if buf[0] != 2 {
		t.Fatalf("out-of-range code painted %v", buf)
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillPalette(buf, []uint8{1, 0}, nil)
	if diff := cmp.Diff(make([]byte, 8), buf); diff != "" {
		t.Fatalf("buffer not cleared (-want +got):\n%s", diff)
	}
}

func TestFillMono(t *testing.T) {
	buf := make([]byte, 8)
	FillMono(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels (-want +got):\n%s", diff)
	}
}
