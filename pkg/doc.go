// Package pkg provides the core libraries for Collatz trajectory
// visualization.
//
// # Overview
//
// The data flow is strictly downward:
//
//	starting integer
//	       ↓
//	  [collatz] package (trajectory under a stepping rule)
//	       ↓
//	  [bitgrid] package (ternary bit grid, one row per value)
//	       ↓
//	  [render] package (canvas painting, frame compositing)
//	       ↓
//	  [render/sink] package (GIF / PNG / scatter artifacts)
//
// The [scene] package orchestrates the pipeline into the four artifacts of
// a full run; it holds no algorithmic content of its own.
//
// # Quick Start
//
// Render a spacetime animation for n = 27:
//
//	res := collatz.TrajectoryInt(27, collatz.Accelerated)
//	grid := bitgrid.Encode(res.Values)
//	cfg := render.DefaultConfig()
//	frames := render.Spacetime(grid, cfg, 850)
//	err := sink.EncodeAnimation(frames, "spacetime.gif", 60, cfg.QuantPalette())
//
// Or let a scene runner do the wiring:
//
//	runner := scene.NewRunner(logger)
//	reports, err := runner.GenerateAll(ctx, scene.DefaultOptions())
//
// [collatz]: https://pkg.go.dev/github.com/bour278/collatz-automata/pkg/collatz
// [bitgrid]: https://pkg.go.dev/github.com/bour278/collatz-automata/pkg/bitgrid
// [render]: https://pkg.go.dev/github.com/bour278/collatz-automata/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/bour278/collatz-automata/pkg/render/sink
// [scene]: https://pkg.go.dev/github.com/bour278/collatz-automata/pkg/scene
package pkg
