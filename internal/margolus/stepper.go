package margolus

import (
	"context"
	"log/slog"
	"sync"

	"sand-ca/internal/cell"
	"sand-ca/internal/field"
	"sand-ca/internal/logging"
	"sand-ca/internal/rules"
)

// Stepper applies a rule table to a grid one generation at a time. It holds
// no per-step state and may be shared between grids.
type Stepper struct {
	table   *rules.Table
	workers int
	logger  *slog.Logger
}

// Option configures a Stepper.
type Option func(*Stepper)

// WithWorkers splits each step into n row bands computed concurrently.
// Values below 2 keep stepping on the calling goroutine.
func WithWorkers(n int) Option {
	return func(s *Stepper) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}

// WithLogger sets the logger used to trace rule applications.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stepper) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Stepper for table.
func New(table *rules.Table, opts ...Option) *Stepper {
	s := &Stepper{
		table:   table,
		workers: 1,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table returns the rule table the stepper applies.
func (s *Stepper) Table() *rules.Table { return s.table }

// Workers returns the configured band count.
func (s *Stepper) Workers() int { return s.workers }

// Advance computes the next generation of g for time step step and commits
// it. Every playable cell is recomputed from the frozen current generation;
// the reserved boundary row, if any, is carried over untouched. It returns
// the number of cells whose value changed.
func (s *Stepper) Advance(g *field.Grid, step uint64) int {
	next := g.Next()
	rows := g.PlayableHeight()

	bands := s.workers
	if bands > rows {
		bands = rows
	}
	if bands <= 1 {
		changed := s.advanceRows(g, next, step, 0, rows)
		g.Commit()
		return changed
	}

	counts := make([]int, bands)
	var wg sync.WaitGroup
	per := (rows + bands - 1) / bands
	for b := 0; b < bands; b++ {
		start := b * per
		end := start + per
		if end > rows {
			end = rows
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(b, start, end int) {
			defer wg.Done()
			counts[b] = s.advanceRows(g, next, step, start, end)
		}(b, start, end)
	}
	wg.Wait()
	g.Commit()

	changed := 0
	for _, c := range counts {
		changed += c
	}
	return changed
}

func (s *Stepper) advanceRows(g *field.Grid, next []cell.Type, step uint64, start, end int) int {
	w := g.Width()
	cur := g.Cells()
	trace := s.logger.Enabled(context.Background(), logging.LevelTrace)
	changed := 0
	for row := start; row < end; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			corner := Classify(row, col, step)
			nh := Neighborhood(g, corner, row, col)
			shifted := s.table.Lookup(nh)
			if trace && shifted != nh {
				s.logger.Log(context.Background(), logging.LevelTrace, "rule applied",
					"step", step, "row", row, "col", col, "corner", corner,
					"pattern", nh.String(), "replacement", shifted.String())
			}
			v := shifted[corner.Slot()]
			if v != cur[idx] {
				changed++
			}
			next[idx] = v
		}
	}
	return changed
}
