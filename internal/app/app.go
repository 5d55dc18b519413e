//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sand-ca/internal/core"
	"sand-ca/internal/logging"
	"sand-ca/internal/render"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// materialKeys select brush materials, in the order of materialLabels.
var materialKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	brush   core.Brush
	painter *render.GridPainter
	hud     *ui.HUD
	opts    Options

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	opts = opts.normalized()
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	var palette []color.RGBA
	if p, ok := sim.(core.Palettized); ok {
		palette = p.Palette()
	}
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H, palette),
		opts:    opts,
	}
	var footer []string
	if b, ok := sim.(core.Brush); ok {
		g.brush = b
		footer = helpLines(b.Materials())
	}
	g.hud = ui.NewHUD(sim, opts.HUDWidth, hudControls(opts.MaxBrushRadius), footer)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.opts.Seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.opts.Logger.Info("reset", "sim", g.sim.Name(), "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.opts.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.updateBrush()

	g.hud.Update(g.sim.Size().W * g.opts.Scale)

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) updateBrush() {
	if g.brush == nil {
		return
	}
	for i, key := range materialKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.brush.SetMaterial(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
		g.brush.SetRadius(g.brush.Radius() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		g.brush.SetRadius(g.brush.Radius() + 1)
	}

	paint := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !paint && !erase {
		return
	}
	mx, my := ebiten.CursorPosition()
	if x, y, ok := cellAt(mx, my, g.opts.Scale, g.sim.Size()); ok {
		n := g.brush.PaintAt(x, y, erase)
		g.opts.Logger.Debug("paint", "x", x, "y", y, "erase", erase, "cells", n)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.opts.Scale)
	g.hud.Draw(screen, g.sim.Size().W*g.opts.Scale, g.opts.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.opts.Scale + g.opts.HUDWidth, s.H * g.opts.Scale
}
