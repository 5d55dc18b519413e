// Package sand hosts the falling-sand automaton behind the core.Sim contract.
package sand

import (
	"fmt"
	"image/color"
	"log/slog"

	"sand-ca/internal/cell"
	"sand-ca/internal/core"
	"sand-ca/internal/field"
	"sand-ca/internal/logging"
	"sand-ca/internal/margolus"
	"sand-ca/internal/rules"
)

// World couples a grid, its rule table and a tick counter.
type World struct {
	cfg     Config
	grid    *field.Grid
	table   *rules.Table
	stepper *margolus.Stepper
	logger  *slog.Logger
	rng     *core.RNG

	tick        uint64
	lastChanged int
	quietTicks  int
	display     []uint8

	material cell.Type
	radius   int
}

// Option configures a World.
type Option func(*World)

// WithLogger routes stepper tracing and sim diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// New returns a sand world with the provided dimensions using defaults.
func New(width, height int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig builds the rule table named by cfg and a world filled
// according to cfg.Fill.
func NewWithConfig(cfg Config, opts ...Option) (*World, error) {
	base, err := loadRules(cfg)
	if err != nil {
		return nil, err
	}
	table, err := rules.Build(base)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:      cfg,
		table:    table,
		logger:   logging.Discard(),
		material: cell.Sand,
		radius:   cfg.BrushRadius,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.stepper = margolus.New(table,
		margolus.WithWorkers(cfg.Workers),
		margolus.WithLogger(w.logger))
	if err := w.reset(cfg.Seed); err != nil {
		return nil, err
	}
	w.logger.Debug("sand world ready",
		"width", cfg.Width, "height", cfg.Height,
		"rules", table.Len(), "fill", cfg.Fill)
	return w, nil
}

func loadRules(cfg Config) ([]rules.Rule, error) {
	if cfg.RulesFile != "" {
		return rules.LoadFile(cfg.RulesFile)
	}
	return rules.Named(cfg.Rules)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions, including a reserved boundary row.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the underlying grid.
func (w *World) Grid() *field.Grid { return w.grid }

// Table exposes the expanded rule table.
func (w *World) Table() *rules.Table { return w.table }

// Tick is the time step the next Step will use.
func (w *World) Tick() uint64 { return w.tick }

// LastChanged is the number of cells the most recent Step changed.
func (w *World) LastChanged() int { return w.lastChanged }

// settleTicks is the number of consecutive unchanged steps, one per block
// partition, after which the grid cannot change again.
const settleTicks = 2

// Settled reports whether the last two steps, one on each block partition,
// changed nothing.
func (w *World) Settled() bool { return w.quietTicks >= settleTicks }

// Palette maps display codes to colours.
func (w *World) Palette() []color.RGBA { return cell.Palette() }

// Cells exposes the current display buffer, one cell code per cell.
func (w *World) Cells() []uint8 {
	w.display = w.grid.Codes(w.display)
	return w.display
}

// Reset rebuilds the grid from the configured fill. A zero seed reuses the
// configured one.
func (w *World) Reset(seed int64) {
	if err := w.reset(seed); err != nil {
		// Dimensions were validated when the world was built.
		panic(err)
	}
}

func (w *World) reset(seed int64) error {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)
	g, err := field.New(w.cfg.Width, w.cfg.Height, w.fill(),
		field.WithReservedBoundaryRow(w.cfg.ReserveBoundaryRow))
	if err != nil {
		return fmt.Errorf("sand: %w", err)
	}
	w.grid = g
	w.tick = 0
	w.lastChanged = 0
	w.quietTicks = 0
	return nil
}

func (w *World) fill() func(int) cell.Type {
	switch w.cfg.Fill {
	case FillEmpty:
		return field.Uniform(cell.Empty)
	case FillScatter:
		return field.Scatter(w.rng, w.cfg.Density, cell.Sand)
	default:
		return field.Annulus(w.cfg.Width, w.cfg.Height, 0.2, 0.3, cell.Sand)
	}
}

// Step advances the world by one generation.
func (w *World) Step() {
	w.lastChanged = w.stepper.Advance(w.grid, w.tick)
	if w.lastChanged == 0 {
		w.quietTicks++
	} else {
		w.quietTicks = 0
	}
	w.tick++
}

// Run steps up to n generations, stopping early once the grid settles. It
// returns the number of steps taken.
func (w *World) Run(n int) int {
	for i := 0; i < n; i++ {
		w.Step()
		if w.Settled() {
			w.logger.Debug("grid settled", "tick", w.tick)
			return i + 1
		}
	}
	return n
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
