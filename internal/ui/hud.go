//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"sand-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []controlState
	setter       core.IntParameterSetter
	panelOffsetX int
	title        string
	footer       []string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
// Controls are only offered when the sim accepts integer updates.
func NewHUD(sim core.Sim, width int, controls []Control, footer []string) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim), footer: footer}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
		h.controls = newControlStates(controls, width)
	}
	return h
}

// Update refreshes the cached parameter snapshot from the simulation and
// handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	refresh(h.controls, h.snapshot)
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	i, dir, ok := hit(h.controls, mx-h.panelOffsetX, my)
	if !ok {
		return
	}
	state := &h.controls[i]
	if v, changed := state.target(dir); changed && h.setter.SetIntParameter(state.control.Key, v) {
		state.value = v
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawContents()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelColor)
		value, c := "--", dimColor
		if state.hasValue {
			value, c = strconv.Itoa(state.value), labelColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-w, y, c)
		_, minus := state.target(-1)
		_, plus := state.target(1)
		h.drawButton(state.minusRect, "-", minus)
		h.drawButton(state.plusRect, "+", plus)
	}

	y := controlsTop + len(h.controls)*lineHeight + textLine
	for _, line := range infoLines(h.snapshot, h.controls) {
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		y += textLine
	}
	y += textLine
	for _, line := range h.footer {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += textLine
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
