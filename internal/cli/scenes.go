package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bour278/collatz-automata/pkg/collatz"
	"github.com/bour278/collatz-automata/pkg/scene"
)

// sceneFlags holds the flags shared by all single-scene commands.
type sceneFlags struct {
	outDir string
	rule   string
}

func (f *sceneFlags) register(cmd *cobra.Command, defaultRule collatz.Rule) {
	cmd.Flags().StringVarP(&f.outDir, "out", "o", scene.DefaultOutDir, "output directory")
	cmd.Flags().StringVar(&f.rule, "rule", defaultRule.String(), "stepping rule: standard or accelerated")
}

// prepare validates the shared flags, applies them to opts, and ensures the
// output directory exists.
func (f *sceneFlags) prepare(opts *scene.Options, dst *collatz.Rule) error {
	rule, err := collatz.ParseRule(f.rule)
	if err != nil {
		return err
	}
	*dst = rule
	opts.OutDir = f.outDir
	if err := opts.Validate(); err != nil {
		return err
	}
	return os.MkdirAll(opts.OutDir, 0o755)
}

// newSpacetimeCmd creates the spacetime command, rendering one trajectory's
// animated bit-grid diagram.
func newSpacetimeCmd() *cobra.Command {
	var flags sceneFlags
	var n int64
	var targetHeight, delayMS int

	cmd := &cobra.Command{
		Use:   "spacetime",
		Short: "Render an animated spacetime diagram for one trajectory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			opts := scene.DefaultOptions()
			opts.Spacetime.N = n
			opts.Spacetime.TargetHeight = targetHeight
			opts.Spacetime.DelayMS = delayMS
			if err := flags.prepare(&opts, &opts.Spacetime.Rule); err != nil {
				return err
			}
			printInfo("Rendering spacetime diagram for n = %d (%s)", n, opts.Spacetime.Rule)

			p := newProgress(logger)
			rep, err := scene.NewRunner(logger).Spacetime(ctx, opts)
			if err != nil {
				return err
			}
			if rep.Truncated {
				printWarning("trajectory capped at %d elements", collatz.MaxLen)
			}
			p.done(fmt.Sprintf("Rendered %d steps, %d frames", rep.Steps, rep.Frames))
			printFile(rep.Path)
			return nil
		},
	}

	flags.register(cmd, collatz.Accelerated)
	cmd.Flags().Int64VarP(&n, "n", "n", scene.DefaultSpacetimeN, "starting integer (>= 1)")
	cmd.Flags().IntVar(&targetHeight, "height", scene.DefaultTargetHeight, "target output height in pixels")
	cmd.Flags().IntVar(&delayMS, "delay", scene.DefaultSpacetimeDelay, "frame delay in milliseconds")

	return cmd
}

// newParallelCmd creates the parallel command, rendering several
// trajectories side by side in one synchronized animation.
func newParallelCmd() *cobra.Command {
	var flags sceneFlags
	var numbers []int64
	var cell, delayMS int

	cmd := &cobra.Command{
		Use:   "parallel",
		Short: "Render several trajectories side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			opts := scene.DefaultOptions()
			opts.Parallel.Numbers = numbers
			opts.Parallel.Cell = cell
			opts.Parallel.DelayMS = delayMS
			if err := flags.prepare(&opts, &opts.Parallel.Rule); err != nil {
				return err
			}
			printInfo("Rendering %d trajectories side by side (%s)", len(numbers), opts.Parallel.Rule)

			p := newProgress(logger)
			rep, err := scene.NewRunner(logger).Parallel(ctx, opts)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Rendered %d trajectories, %d frames", len(numbers), rep.Frames))
			printFile(rep.Path)
			return nil
		},
	}

	flags.register(cmd, collatz.Accelerated)
	cmd.Flags().Int64SliceVar(&numbers, "numbers", []int64{7, 27, 97}, "starting integers (comma-separated)")
	cmd.Flags().IntVar(&cell, "cell", scene.DefaultParallelCell, "cell size in pixels")
	cmd.Flags().IntVar(&delayMS, "delay", scene.DefaultParallelDelay, "frame delay in milliseconds")

	return cmd
}

// newScatterCmd creates the scatter command, plotting stopping times over a
// numeric range. The sweep can take a while for large ranges, so it runs
// behind a spinner.
func newScatterCmd() *cobra.Command {
	var flags sceneFlags
	var from, to int64

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Plot stopping times over a range of starting integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			opts := scene.DefaultOptions()
			opts.Scatter.From = from
			opts.Scatter.To = to
			if err := flags.prepare(&opts, &opts.Scatter.Rule); err != nil {
				return err
			}

			sp := newSpinnerWithContext(ctx, fmt.Sprintf("computing stopping times for n = %d..%d", from, to))
			sp.Start()
			rep, err := scene.NewRunner(logger).StoppingTimes(ctx, opts)
			if err != nil {
				sp.Stop()
				return err
			}

			sp.StopWithSuccess(fmt.Sprintf("Plotted %d points (max stopping time %d)", to-from+1, rep.Steps))
			printFile(rep.Path)
			return nil
		},
	}

	flags.register(cmd, collatz.Accelerated)
	cmd.Flags().Int64Var(&from, "from", scene.DefaultScatterFrom, "range start (inclusive)")
	cmd.Flags().Int64Var(&to, "to", scene.DefaultScatterTo, "range end (inclusive)")

	return cmd
}

// newLandscapeCmd creates the landscape command, rendering the static
// bit-grid image.
func newLandscapeCmd() *cobra.Command {
	var flags sceneFlags
	var n int64
	var cell int

	cmd := &cobra.Command{
		Use:   "landscape",
		Short: "Render a static bit-grid landscape for one trajectory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			opts := scene.DefaultOptions()
			opts.Landscape.N = n
			opts.Landscape.Cell = cell
			if err := flags.prepare(&opts, &opts.Landscape.Rule); err != nil {
				return err
			}
			printInfo("Rendering landscape for n = %d (%s)", n, opts.Landscape.Rule)

			rep, err := scene.NewRunner(logger).Landscape(ctx, opts)
			if err != nil {
				return err
			}
			printSuccess("Rendered %d rows", rep.Steps+1)
			printFile(rep.Path)
			return nil
		},
	}

	flags.register(cmd, collatz.Standard)
	cmd.Flags().Int64VarP(&n, "n", "n", scene.DefaultLandscapeN, "starting integer (>= 1)")
	cmd.Flags().IntVar(&cell, "cell", scene.DefaultLandscapeCell, "cell size in pixels")

	return cmd
}
