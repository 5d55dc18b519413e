package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sand-ca/internal/config"
	"sand-ca/internal/core"
	"sand-ca/internal/field"
	"sand-ca/internal/sims/sand"
)

var encodings = map[string]field.Encoding{
	"codes":   field.CodeEncoding{},
	"code32":  field.Code32Encoding{},
	"palette": field.PaletteEncoding{},
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a grid and print or export the result",
		Long: `Step the automaton a number of generations and write the final grid.

The default ascii format prints one glyph per cell: '.' empty, 'o' sand,
'#' wall, '~' water. The codes, code32 and palette formats write the raw
export encodings.`,
		Example: `  sandctl run --width 32 --height 16 --steps 200 --until-settled
  sandctl run --fill scatter --format palette --out grid.bin`,
		RunE: runRun,
	}

	cmd.Flags().Int("steps", 100, "Maximum generations to step")
	cmd.Flags().Bool("until-settled", false, "Stop early once two consecutive steps change no cells")
	cmd.Flags().Int("every", 0, "Print the ascii grid every N steps (0 disables)")
	cmd.Flags().Bool("watch", false, "Pace steps at the configured ticks per second")
	cmd.Flags().String("format", "ascii", "Output format: ascii, codes, code32 or palette")
	cmd.Flags().String("out", "", "Write output to a file instead of stdout")

	cmd.Flags().Int("width", 0, "Grid width override")
	cmd.Flags().Int("height", 0, "Grid height override")
	cmd.Flags().Int64("seed", 0, "Seed override")
	cmd.Flags().String("fill", "", "Initial fill override: empty, annulus or scatter")
	cmd.Flags().String("rules", "", "Built-in rule set override")
	cmd.Flags().String("rules-file", "", "YAML rule file override")
	cmd.Flags().Int("workers", 0, "Row bands stepped concurrently")
	cmd.Flags().Bool("reserve-boundary-row", true, "Keep the last row as a fixed wall floor")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyRunOverrides(cmd, cfg); err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	format, _ := cmd.Flags().GetString("format")
	enc, binary := encodings[format]
	if !binary && format != "ascii" {
		return fmt.Errorf("unknown format %q (valid: ascii, codes, code32, palette)", format)
	}

	world, err := sand.NewWithConfig(cfg.Sim.SandConfig(), sand.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}

	steps, _ := cmd.Flags().GetInt("steps")
	untilSettled, _ := cmd.Flags().GetBool("until-settled")
	every, _ := cmd.Flags().GetInt("every")
	watch, _ := cmd.Flags().GetBool("watch")

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	pace := core.NewFixedStep(cfg.Window.TPS)
	start := time.Now()
	logger.Info("running", "width", cfg.Sim.Width, "height", cfg.Sim.Height,
		"rules", world.Table().Len(), "steps", steps, "workers", cfg.Sim.Workers)

	for i := 0; i < steps; i++ {
		if ctx != nil && ctx.Err() != nil {
			logger.Warn("interrupted", "tick", world.Tick())
			break
		}
		if watch {
			for !pace.ShouldStep() {
				time.Sleep(pace.Remaining())
			}
		}
		world.Step()
		logger.Debug("step", "tick", world.Tick(), "changed", world.LastChanged())
		if every > 0 && world.Tick()%uint64(every) == 0 {
			fmt.Fprintf(out, "tick %d\n%s\n", world.Tick(), world.Grid())
		}
		if untilSettled && world.Settled() {
			break
		}
	}
	logger.Info("done", "ticks", world.Tick(), "settled", world.Settled(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	dst, closeFn, err := openOutput(cmd, out)
	if err != nil {
		return err
	}
	defer closeFn()
	if binary {
		_, err = dst.Write(world.Grid().Export(enc))
	} else {
		_, err = io.WriteString(dst, world.Grid().String())
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func applyRunOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Sim.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Sim.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("seed") {
		cfg.Sim.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("fill") {
		cfg.Sim.Fill, _ = flags.GetString("fill")
	}
	if flags.Changed("rules") {
		cfg.Sim.Rules, _ = flags.GetString("rules")
	}
	if flags.Changed("rules-file") {
		cfg.Sim.RulesFile, _ = flags.GetString("rules-file")
	}
	if flags.Changed("workers") {
		cfg.Sim.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("reserve-boundary-row") {
		cfg.Sim.ReserveBoundaryRow, _ = flags.GetBool("reserve-boundary-row")
	}
	return cfg.Validate()
}

func openOutput(cmd *cobra.Command, stdout io.Writer) (io.Writer, func(), error) {
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
