// Package cmd provides Cobra CLI commands for panemux.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avdl/panemux/internal/cli"
	"github.com/avdl/panemux/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "panemux",
		Short: "Multi-window editor-group coordinator",
		Long: `Panemux coordinates a dynamic collection of window parts, each owning
a grid of editor groups, behind one unified editor-group service.

Auxiliary window layout, geometry, and most-recently-active order are
persisted per workspace and restored on the next start. Use the state
subcommand to inspect or clear the persisted snapshot.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// SetBuildInfo passes build-time metadata from main.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}
