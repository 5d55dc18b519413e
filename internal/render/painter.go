//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads sim cells into a single RGBA image and draws it scaled.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

var (
	monoOn  = color.White
	monoOff = color.Black
)

// NewGridPainter allocates a painter for a grid of size w*h. A nil palette
// draws cells as white on black.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: palette,
	}
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if len(gp.palette) == 0 {
		FillMono(gp.buf, cells, monoOn, monoOff)
	} else {
		FillPalette(gp.buf, cells, gp.palette)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
