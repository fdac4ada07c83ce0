package scene

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bour278/collatz-automata/pkg/bitgrid"
	"github.com/bour278/collatz-automata/pkg/collatz"
	"github.com/bour278/collatz-automata/pkg/render"
	"github.com/bour278/collatz-automata/pkg/render/sink"
)

// Runner executes scenes. It is stateless apart from its logger; each scene
// computes its own trajectories and composites onto its own canvas, so one
// Runner can build any number of artifacts.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Report describes one produced artifact.
type Report struct {
	Path      string
	Frames    int  // frame count for animated artifacts, 1 for static ones
	Steps     int  // stopping time of the (longest) trajectory involved
	Truncated bool // whether any trajectory hit the length cap
}

// Spacetime builds the single-trajectory animated spacetime diagram.
func (r *Runner) Spacetime(ctx context.Context, opts Options) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	o := opts.Spacetime

	res := collatz.Trajectory(big.NewInt(o.N), o.Rule)
	if res.Truncated {
		r.Logger.Warnf("trajectory for n=%d truncated at %d elements", o.N, collatz.MaxLen)
	}
	grid := bitgrid.Encode(res.Values)
	r.Logger.Debugf("n=%d (%s): %d steps, %d bit columns", o.N, o.Rule, res.StoppingTime(), grid.Cols())

	frames := render.Spacetime(grid, opts.Single, o.TargetHeight)
	path := filepath.Join(opts.OutDir, o.Filename())
	if err := sink.EncodeAnimation(frames, path, o.DelayMS, opts.Single.QuantPalette()); err != nil {
		return Report{}, err
	}
	return Report{
		Path:      path,
		Frames:    len(frames),
		Steps:     res.StoppingTime(),
		Truncated: res.Truncated,
	}, nil
}

// Parallel builds the side-by-side animation for opts.Parallel.Numbers.
func (r *Runner) Parallel(ctx context.Context, opts Options) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	o := opts.Parallel

	grids := make([]bitgrid.Grid, 0, len(o.Numbers))
	maxSteps := 0
	truncated := false
	for _, n := range o.Numbers {
		res := collatz.Trajectory(big.NewInt(n), o.Rule)
		truncated = truncated || res.Truncated
		if res.StoppingTime() > maxSteps {
			maxSteps = res.StoppingTime()
		}
		grids = append(grids, bitgrid.Encode(res.Values))
	}
	r.Logger.Debugf("parallel %v (%s): longest %d steps", o.Numbers, o.Rule, maxSteps)

	frames := render.Parallel(grids, opts.Multi, o.Cell)
	path := filepath.Join(opts.OutDir, o.Filename())
	if err := sink.EncodeAnimation(frames, path, o.DelayMS, opts.Multi.QuantPalette()); err != nil {
		return Report{}, err
	}
	return Report{Path: path, Frames: len(frames), Steps: maxSteps, Truncated: truncated}, nil
}

// StoppingTimes builds the stopping-time scatter plot for the configured
// range.
func (r *Runner) StoppingTimes(ctx context.Context, opts Options) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	o := opts.Scatter

	times := collatz.StoppingTimes(o.From, o.To, o.Rule)
	xs := make([]float64, len(times))
	ys := make([]float64, len(times))
	maxSteps := 0
	for i, t := range times {
		xs[i] = float64(o.From + int64(i))
		ys[i] = float64(t)
		if t > maxSteps {
			maxSteps = t
		}
	}
	r.Logger.Debugf("scatter n=%d..%d (%s): max stopping time %d", o.From, o.To, o.Rule, maxSteps)

	title := fmt.Sprintf("Collatz stopping times (%s), n = %d..%d", o.label(), o.From, o.To)
	path := filepath.Join(opts.OutDir, o.Filename())
	if err := sink.EncodeScatter(xs, ys, title, "n", "stopping time", path); err != nil {
		return Report{}, err
	}
	return Report{Path: path, Frames: 1, Steps: maxSteps}, nil
}

// Landscape builds the static bit-grid landscape.
func (r *Runner) Landscape(ctx context.Context, opts Options) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	o := opts.Landscape

	res := collatz.Trajectory(big.NewInt(o.N), o.Rule)
	grid := bitgrid.Encode(res.Values)
	r.Logger.Debugf("landscape n=%d (%s): %dx%d grid", o.N, o.Rule, grid.Rows(), grid.Cols())

	img := render.Landscape(grid, opts.Single, o.Cell)
	path := filepath.Join(opts.OutDir, o.Filename())
	if err := sink.EncodeStatic(img, path); err != nil {
		return Report{}, err
	}
	return Report{Path: path, Frames: 1, Steps: res.StoppingTime(), Truncated: res.Truncated}, nil
}

// GenerateAll validates the options, creates the output directory, and
// builds all four artifacts in order. It stops at the first failure or
// context cancellation.
func (r *Runner) GenerateAll(ctx context.Context, opts Options) ([]Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	scenes := []struct {
		name string
		run  func(context.Context, Options) (Report, error)
	}{
		{"spacetime", r.Spacetime},
		{"parallel", r.Parallel},
		{"stopping times", r.StoppingTimes},
		{"landscape", r.Landscape},
	}

	reports := make([]Report, 0, len(scenes))
	for i, s := range scenes {
		r.Logger.Infof("[%d/%d] Rendering %s", i+1, len(scenes), s.name)
		rep, err := s.run(ctx, opts)
		if err != nil {
			return reports, fmt.Errorf("%s: %w", s.name, err)
		}
		r.Logger.Infof("Wrote %s", rep.Path)
		reports = append(reports, rep)
	}
	return reports, nil
}
