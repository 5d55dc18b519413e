//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"sand-ca/internal/app"
	"sand-ca/internal/config"
	"sand-ca/internal/core"
	"sand-ca/internal/logging"
	"sand-ca/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)

	factory, ok := core.Sims()[cfg.Sim.Name]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim.Name, core.Names())
	}
	sim, err := factory(cfg.Sim.Values())
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim.Name, err)
	}

	game := app.New(sim, app.Options{
		Scale:    cfg.Window.Scale,
		HUDWidth: cfg.Window.HUDWidth,
		Seed:     cfg.Sim.Seed,
		Logger:   logger,

		MaxBrushRadius: sand.MaxBrushRadius,
	})
	size := sim.Size()
	logger.Info("starting", "sim", sim.Name(), "width", size.W, "height", size.H, "tps", cfg.Window.TPS)

	ebiten.SetWindowTitle("sand-ca: " + sim.Name())
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(size.W*cfg.Window.Scale+cfg.Window.HUDWidth, size.H*cfg.Window.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
