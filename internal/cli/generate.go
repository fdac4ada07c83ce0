package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bour278/collatz-automata/pkg/collatz"
	"github.com/bour278/collatz-automata/pkg/scene"
)

// newGenerateCmd creates the generate command, which produces all four
// artifacts of a full run: the spacetime animation, the parallel animation,
// the stopping-time scatter, and the bit landscape.
func newGenerateCmd() *cobra.Command {
	var outDir, configPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate all four Collatz artifacts",
		Long: `Generate the full artifact set into the output directory:

  01_spacetime_<n>.gif   animated spacetime diagram (accelerated T3)
  02_parallel.gif        side-by-side trajectory animation
  03_stopping_times.png  stopping-time scatter plot
  04_landscape_<n>.png   static bit-grid landscape (standard rule)

Scene parameters default to the reference run (n=27, [7 27 97], n=2..10000)
and can be overridden with a TOML config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			opts := scene.DefaultOptions()
			opts.OutDir = outDir
			if configPath != "" {
				if err := loadConfig(configPath, &opts); err != nil {
					return err
				}
				logger.Debugf("Applied config %s", configPath)
			}

			printBanner("Collatz Automata - Binary Spacetime Diagrams",
				"Based on Chen, 'CA to More Efficiently Compute the Collatz Map'")

			p := newProgress(logger)
			runner := scene.NewRunner(logger)
			reports, err := runner.GenerateAll(ctx, opts)
			for _, rep := range reports {
				printFile(rep.Path)
				if rep.Truncated {
					printWarning("trajectory capped at %d elements; artifact shows a truncated run", collatz.MaxLen)
				}
			}
			if err != nil {
				return err
			}

			p.done(fmt.Sprintf("Generated %d artifacts in %s", len(reports), opts.OutDir))
			printSuccess("All outputs saved to %s", opts.OutDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", scene.DefaultOutDir, "output directory")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML config file overriding scene defaults")

	return cmd
}
