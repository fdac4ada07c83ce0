// Package cli implements the collatz command-line interface.
//
// The CLI exposes one command per artifact (spacetime, parallel, scatter,
// landscape) plus generate, which produces all four in order. All commands
// support --verbose (-v) for debug-level logging; loggers are passed through
// context.Context so the scene runner can report structured progress.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the collatz CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "collatz",
		Short:        "Collatz renders trajectory spacetime diagrams",
		Long:         `Collatz computes integer trajectories under the Collatz map (standard or accelerated T3) and renders them as animated bit-grid spacetime diagrams, parallel multi-trajectory animations, stopping-time scatter plots, and static bit landscapes.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("collatz %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSpacetimeCmd())
	root.AddCommand(newParallelCmd())
	root.AddCommand(newScatterCmd())
	root.AddCommand(newLandscapeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
