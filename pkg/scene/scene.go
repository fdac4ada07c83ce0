// Package scene orchestrates the trajectory → bit grid → frames → artifact
// pipeline into the four concrete artifacts a full run produces:
//
//  1. An animated spacetime diagram for a single trajectory.
//  2. A parallel animation of several trajectories side by side.
//  3. A stopping-time scatter plot over a numeric range.
//  4. A static bit-grid landscape.
//
// The package carries no algorithmic content of its own; it wires the
// collatz, bitgrid, and render packages together, hands results to the
// encoding sinks, and reports what it produced so the CLI can log it.
package scene

import (
	"fmt"

	"github.com/bour278/collatz-automata/pkg/collatz"
	"github.com/bour278/collatz-automata/pkg/render"
)

// Default scene parameters, mirroring the reference run: n=27 spacetime,
// [7 27 97] parallel, n=2..10000 scatter, n=27 landscape.
const (
	DefaultSpacetimeN     = 27
	DefaultTargetHeight   = 850
	DefaultSpacetimeDelay = 60
	DefaultParallelCell   = 12
	DefaultParallelDelay  = 70
	DefaultScatterFrom    = 2
	DefaultScatterTo      = 10000
	DefaultLandscapeN     = 27
	DefaultLandscapeCell  = 6
	DefaultOutDir         = "output"
)

// SpacetimeOptions configures the single-trajectory animation.
type SpacetimeOptions struct {
	N            int64
	Rule         collatz.Rule
	TargetHeight int // desired output height; cell size derives from it
	DelayMS      int
}

// Filename returns the artifact name for these options.
func (o SpacetimeOptions) Filename() string {
	return fmt.Sprintf("01_spacetime_%d.gif", o.N)
}

// ParallelOptions configures the side-by-side multi-trajectory animation.
type ParallelOptions struct {
	Numbers []int64
	Rule    collatz.Rule
	Cell    int // fixed cell size in pixels
	DelayMS int
}

// Filename returns the artifact name for these options.
func (o ParallelOptions) Filename() string { return "02_parallel.gif" }

// ScatterOptions configures the stopping-time scatter sweep over the
// inclusive range [From, To].
type ScatterOptions struct {
	From int64
	To   int64
	Rule collatz.Rule
}

// Filename returns the artifact name for these options.
func (o ScatterOptions) Filename() string { return "03_stopping_times.png" }

// label names the rule the way the plot title expects it.
func (o ScatterOptions) label() string {
	if o.Rule == collatz.Accelerated {
		return "accelerated T3"
	}
	return "standard"
}

// LandscapeOptions configures the static bit-grid landscape.
type LandscapeOptions struct {
	N    int64
	Rule collatz.Rule
	Cell int
}

// Filename returns the artifact name for these options.
func (o LandscapeOptions) Filename() string {
	return fmt.Sprintf("04_landscape_%d.png", o.N)
}

// Options bundles the configuration for every scene plus the compositor
// configs they paint with. Zero options are not usable; start from
// [DefaultOptions] and override.
type Options struct {
	OutDir string

	Spacetime SpacetimeOptions
	Parallel  ParallelOptions
	Scatter   ScatterOptions
	Landscape LandscapeOptions

	// Single is the compositor config for single-trajectory scenes
	// (spacetime and landscape); Multi is used by the parallel scene.
	Single render.Config
	Multi  render.Config
}

// DefaultOptions reproduces the reference run: accelerated spacetime,
// parallel, and scatter scenes, standard-rule landscape.
func DefaultOptions() Options {
	return Options{
		OutDir: DefaultOutDir,
		Spacetime: SpacetimeOptions{
			N:            DefaultSpacetimeN,
			Rule:         collatz.Accelerated,
			TargetHeight: DefaultTargetHeight,
			DelayMS:      DefaultSpacetimeDelay,
		},
		Parallel: ParallelOptions{
			Numbers: []int64{7, 27, 97},
			Rule:    collatz.Accelerated,
			Cell:    DefaultParallelCell,
			DelayMS: DefaultParallelDelay,
		},
		Scatter: ScatterOptions{
			From: DefaultScatterFrom,
			To:   DefaultScatterTo,
			Rule: collatz.Accelerated,
		},
		Landscape: LandscapeOptions{
			N:    DefaultLandscapeN,
			Rule: collatz.Standard,
			Cell: DefaultLandscapeCell,
		},
		Single: render.DefaultConfig(),
		Multi:  render.MultiConfig(),
	}
}

// Validate checks that every scene's parameters satisfy the engine's
// preconditions (starting points >= 1, sane geometry).
func (o Options) Validate() error {
	if o.OutDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if o.Spacetime.N < 1 {
		return fmt.Errorf("spacetime: n must be >= 1, got %d", o.Spacetime.N)
	}
	if o.Spacetime.TargetHeight < 1 {
		return fmt.Errorf("spacetime: target height must be positive, got %d", o.Spacetime.TargetHeight)
	}
	if len(o.Parallel.Numbers) == 0 {
		return fmt.Errorf("parallel: at least one starting number required")
	}
	for _, n := range o.Parallel.Numbers {
		if n < 1 {
			return fmt.Errorf("parallel: n must be >= 1, got %d", n)
		}
	}
	if o.Parallel.Cell < 1 {
		return fmt.Errorf("parallel: cell size must be positive, got %d", o.Parallel.Cell)
	}
	if o.Scatter.From < 1 {
		return fmt.Errorf("scatter: range start must be >= 1, got %d", o.Scatter.From)
	}
	if o.Scatter.To < o.Scatter.From {
		return fmt.Errorf("scatter: empty range %d..%d", o.Scatter.From, o.Scatter.To)
	}
	if o.Landscape.N < 1 {
		return fmt.Errorf("landscape: n must be >= 1, got %d", o.Landscape.N)
	}
	if o.Landscape.Cell < 1 {
		return fmt.Errorf("landscape: cell size must be positive, got %d", o.Landscape.Cell)
	}
	return nil
}
