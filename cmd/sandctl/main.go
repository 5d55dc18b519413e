// Command sandctl runs the sand automaton without a window.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"sand-ca/internal/config"
	"sand-ca/internal/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sandctl",
		Short: "Headless runner for the falling-sand automaton",
		Long: `sandctl steps the Margolus falling-sand automaton without a window.

Configuration is read from defaults, an optional YAML file (--config) and
SAND_* environment variables, in that order. Command flags win last.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, trace, warn or error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newRulesCmd(),
	)
	return rootCmd
}

// loadConfig resolves the layered configuration for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}
