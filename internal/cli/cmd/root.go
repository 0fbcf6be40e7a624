// Package cmd provides Cobra CLI commands for splitview.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/infrastructure/config"
	"github.com/bnema/splitview/internal/logging"
)

var (
	version = "dev"

	configManager *config.Manager

	rootCmd = &cobra.Command{
		Use:   "splitview",
		Short: "A tiling pane workspace for the terminal",
		Long: `Splitview - tabbed workspaces of tiled panes, driven from the keyboard.

Each workspace is a tree of horizontal and vertical splits. Panes can be
split, closed, swapped and navigated spatially, the way a tiling window
manager or modal editor arranges its views.

Run 'splitview demo' to start the interactive demo, or explore the
subcommands for configuration management.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			configManager, err = config.NewManager()
			if err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := configManager.Load(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the build version (called from main before Execute).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// appContext builds the root context carrying a logger configured from
// the loaded configuration.
func appContext() context.Context {
	cfg := configManager.Get()

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.Format != "" {
		logCfg.Format = cfg.Logging.Format
	}
	logger := logging.New(logCfg)

	return logging.WithContext(context.Background(), logger)
}
