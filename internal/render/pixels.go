// Package render turns sim display codes into pixels.
package render

import "image/color"

// FillPalette converts cell codes into RGBA pixels in buf using palette.
// Codes past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillMono converts cells into on/off pixels for sims without a palette.
func FillMono(buf []byte, cells []uint8, on, off color.Color) {
	FillPalette(buf, cells, []color.RGBA{toRGBA(off), toRGBA(on)})
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
