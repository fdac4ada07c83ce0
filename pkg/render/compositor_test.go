package render

import (
	"image/color"
	"testing"

	"github.com/bour278/collatz-automata/pkg/bitgrid"
	"github.com/bour278/collatz-automata/pkg/collatz"
)

// testConfig is a deterministic config with primary colors so painted cells
// can be asserted pixel-by-pixel.
func testConfig() Config {
	return Config{
		Background: color.RGBA{0, 0, 0, 255},
		Palettes: []Palette{
			{One: color.RGBA{200, 0, 0, 255}, Zero: color.RGBA{0, 0, 200, 255}},
			{One: color.RGBA{0, 200, 0, 255}, Zero: color.RGBA{0, 100, 0, 255}},
		},
		HighlightOne:  50,
		HighlightZero: 50,
		Margin:        10,
		GapCols:       2,
		Hold:          3,
	}
}

// testGrid encodes a short fixed trajectory: 5 (101), 4 (100), 2 (10), 1 (1).
func testGrid(t *testing.T) bitgrid.Grid {
	t.Helper()
	res := collatz.TrajectoryInt(5, collatz.Standard)
	if got, want := len(res.Values), 6; got != want {
		t.Fatalf("trajectory(5) length = %d, want %d", got, want)
	}
	return bitgrid.Encode(res.Values)
}

// cellCenter returns the pixel at the center of cell (row, col) for the
// given geometry.
func cellCenter(margin, cell, row, col int) (x, y int) {
	return margin + col*cell + cell/2, margin + row*cell + cell/2
}

func TestCellSizeClamp(t *testing.T) {
	tests := []struct {
		targetH, rows, want int
	}{
		{850, 112, 7},  // 850/112 = 7, inside the clamp
		{850, 10, 20},  // clamped to max
		{850, 400, 4},  // clamped to min
		{100, 6, 16},   // plain division
		{850, 1000, 4}, // clamped to min
	}
	for _, tt := range tests {
		if got := cellSize(tt.targetH, tt.rows); got != tt.want {
			t.Errorf("cellSize(%d, %d) = %d, want %d", tt.targetH, tt.rows, got, tt.want)
		}
	}
}

func TestCellGapThreshold(t *testing.T) {
	if got := cellGap(8); got != 1 {
		t.Errorf("cellGap(8) = %d, want 1", got)
	}
	if got := cellGap(7); got != 0 {
		t.Errorf("cellGap(7) = %d, want 0", got)
	}
}

func TestSpacetimeFrameCount(t *testing.T) {
	cfg := testConfig()
	g := testGrid(t)

	frames := Spacetime(g, cfg, 60)
	if got, want := len(frames), g.Rows()+cfg.Hold; got != want {
		t.Errorf("frame count = %d, want %d", got, want)
	}
}

func TestSpacetimeFrameCountReference(t *testing.T) {
	// n=27 under the standard rule: 112 rows plus 30 hold frames.
	cfg := DefaultConfig()
	res := collatz.TrajectoryInt(27, collatz.Standard)
	g := bitgrid.Encode(res.Values)

	frames := Spacetime(g, cfg, 850)
	if got, want := len(frames), 142; got != want {
		t.Errorf("frame count = %d, want %d", got, want)
	}
}

func TestSpacetimeHighlightSettles(t *testing.T) {
	cfg := testConfig()
	g := testGrid(t)

	// targetH 60 over 6 rows → cell 10, gap 1.
	frames := Spacetime(g, cfg, 60)
	cell := 10

	base := cfg.Palette(0)
	hi := base.Highlight(cfg.HighlightOne, cfg.HighlightZero)

	// Row 0, col 0 is a One bit (5 = 101). In frame 0 it is highlighted, in
	// frame 1 it has settled to base.
	x, y := cellCenter(cfg.Margin, cell, 0, 0)
	if got := frames[0].RGBAAt(x, y); got != hi.One {
		t.Errorf("frame 0 row 0 = %v, want highlighted %v", got, hi.One)
	}
	if got := frames[1].RGBAAt(x, y); got != base.One {
		t.Errorf("frame 1 row 0 = %v, want settled %v", got, base.One)
	}

	// Row 1 is not painted at all in frame 0.
	x, y = cellCenter(cfg.Margin, cell, 1, 0)
	if got := frames[0].RGBAAt(x, y); got != cfg.Background {
		t.Errorf("frame 0 row 1 = %v, want background %v", got, cfg.Background)
	}
}

func TestSpacetimeHoldFramesSettled(t *testing.T) {
	cfg := testConfig()
	g := testGrid(t)

	frames := Spacetime(g, cfg, 60)
	cell := 10
	base := cfg.Palette(0)

	// The hold frames show the final row settled, not highlighted.
	lastRow := g.Rows() - 1
	x, y := cellCenter(cfg.Margin, cell, lastRow, 0)
	for i := g.Rows(); i < len(frames); i++ {
		if got := frames[i].RGBAAt(x, y); got != base.One {
			t.Errorf("hold frame %d = %v, want settled %v", i, got, base.One)
		}
	}
}

func TestSpacetimeUnsetCellsKeepBackground(t *testing.T) {
	cfg := testConfig()
	g := testGrid(t)

	frames := Spacetime(g, cfg, 60)
	cell := 10

	// Row 4 holds the value 2 (two bits); its third column is Unset and must
	// stay background even after everything settles.
	if got := g.At(4, 2); got != bitgrid.Unset {
		t.Fatalf("At(4,2) = %d, want Unset", got)
	}
	x, y := cellCenter(cfg.Margin, cell, 4, 2)
	last := frames[len(frames)-1]
	if got := last.RGBAAt(x, y); got != cfg.Background {
		t.Errorf("unset cell = %v, want background %v", got, cfg.Background)
	}
}

func TestSpacetimeSnapshotsAreIndependent(t *testing.T) {
	cfg := testConfig()
	g := testGrid(t)

	frames := Spacetime(g, cfg, 60)
	cell := 10

	// If frames shared the live canvas, frame 0 would show rows painted
	// later. Row 2 must still be background in frame 0.
	x, y := cellCenter(cfg.Margin, cell, 2, 0)
	if got := frames[0].RGBAAt(x, y); got != cfg.Background {
		t.Errorf("frame 0 leaked later paint: %v", got)
	}
}

func TestSpacetimeEmptyGrid(t *testing.T) {
	if frames := Spacetime(bitgrid.Grid{}, testConfig(), 60); frames != nil {
		t.Errorf("empty grid frames = %v, want nil", frames)
	}
}

func TestParallelFrameCountAndSize(t *testing.T) {
	cfg := testConfig()
	a := bitgrid.Encode(collatz.TrajectoryInt(7, collatz.Accelerated).Values)
	b := bitgrid.Encode(collatz.TrajectoryInt(27, collatz.Accelerated).Values)
	c := bitgrid.Encode(collatz.TrajectoryInt(97, collatz.Accelerated).Values)
	grids := []bitgrid.Grid{a, b, c}

	cell := 12
	frames := Parallel(grids, cfg, cell)

	maxRows := 0
	sumCols := 0
	for _, g := range grids {
		sumCols += g.Cols()
		if g.Rows() > maxRows {
			maxRows = g.Rows()
		}
	}

	if got, want := len(frames), maxRows+cfg.Hold; got != want {
		t.Errorf("frame count = %d, want %d", got, want)
	}

	// Canvas width covers every grid plus the spacer columns between them.
	wantMin := (sumCols + cfg.GapCols*(len(grids)-1)) * cell
	if got := frames[0].Bounds().Dx(); got < wantMin {
		t.Errorf("canvas width = %d, want >= %d", got, wantMin)
	}
}

func TestParallelShortGridSkipped(t *testing.T) {
	cfg := testConfig()
	short := bitgrid.Encode(collatz.TrajectoryInt(4, collatz.Standard).Values) // 3 rows
	long := bitgrid.Encode(collatz.TrajectoryInt(7, collatz.Standard).Values)  // 17 rows
	grids := []bitgrid.Grid{short, long}

	cell := 10
	frames := Parallel(grids, cfg, cell)
	if got, want := len(frames), long.Rows()+cfg.Hold; got != want {
		t.Fatalf("frame count = %d, want %d", got, want)
	}

	// After the short grid finishes, its final row stays settled in its own
	// palette while the long grid keeps animating.
	base := cfg.Palette(0)
	x, y := cellCenter(cfg.Margin, cell, short.Rows()-1, 0)
	if got := frames[len(frames)-1].RGBAAt(x, y); got != base.One {
		t.Errorf("short grid final row = %v, want settled %v", got, base.One)
	}
}

func TestParallelPalettesCycle(t *testing.T) {
	cfg := testConfig() // two palettes for three grids: third cycles to the first
	g := bitgrid.Encode(collatz.TrajectoryInt(1, collatz.Standard).Values)
	grids := []bitgrid.Grid{g, g, g}

	cell := 10
	frames := Parallel(grids, cfg, cell)
	last := frames[len(frames)-1]

	// Each grid is a single One cell at its column offset.
	for idx := range grids {
		colOff := idx * (1 + cfg.GapCols)
		want := cfg.Palette(idx).One
		x, y := cellCenter(cfg.Margin, cell, 0, colOff)
		if got := last.RGBAAt(x, y); got != want {
			t.Errorf("grid %d settled = %v, want %v", idx, got, want)
		}
	}
	if cfg.Palette(2) != cfg.Palette(0) {
		t.Error("palette cycling broken: Palette(2) != Palette(0)")
	}
}

func TestParallelEmpty(t *testing.T) {
	if frames := Parallel(nil, testConfig(), 10); frames != nil {
		t.Errorf("frames = %v, want nil", frames)
	}
}

func TestLandscape(t *testing.T) {
	cfg := testConfig()
	g := testGrid(t)

	cell := 6
	img := Landscape(g, cfg, cell)

	if got, want := img.Bounds().Dx(), g.Cols()*cell; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got, want := img.Bounds().Dy(), g.Rows()*cell; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}

	base := cfg.Palette(0)
	// No margin in the landscape: cell (0,0) starts at the origin.
	if got := img.RGBAAt(cell/2, cell/2); got != base.One {
		t.Errorf("cell (0,0) = %v, want %v", got, base.One)
	}
	// 5 = 101: cell (0,1) is a Zero bit.
	if got := img.RGBAAt(cell+cell/2, cell/2); got != base.Zero {
		t.Errorf("cell (0,1) = %v, want %v", got, base.Zero)
	}
}

func TestBrightenSaturates(t *testing.T) {
	c := Brighten(color.RGBA{250, 100, 0, 255}, 40)
	want := color.RGBA{255, 140, 40, 255}
	if c != want {
		t.Errorf("Brighten = %v, want %v", c, want)
	}
}

func TestCanvasDimensions(t *testing.T) {
	cv := NewCanvas(7, 11, color.RGBA{0, 0, 0, 255})
	if got, want := cv.Width(), 7; got != want {
		t.Errorf("Width() = %d, want %d", got, want)
	}
	if got, want := cv.Height(), 11; got != want {
		t.Errorf("Height() = %d, want %d", got, want)
	}
	if got, want := cv.Snapshot().Bounds().Dx(), 7; got != want {
		t.Errorf("snapshot width = %d, want %d", got, want)
	}
}

func TestCanvasSnapshotIsCopy(t *testing.T) {
	cv := NewCanvas(4, 4, color.RGBA{0, 0, 0, 255})
	snap := cv.Snapshot()

	cv.FillRect(0, 0, 3, 3, color.RGBA{255, 255, 255, 255})
	if got := snap.RGBAAt(2, 2); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("snapshot mutated by later fill: %v", got)
	}
}

func TestCanvasFillRectDegenerate(t *testing.T) {
	cv := NewCanvas(4, 4, color.RGBA{0, 0, 0, 255})
	cv.FillRect(3, 3, 2, 2, color.RGBA{255, 0, 0, 255}) // inverted, no-op
	if got := cv.Snapshot().RGBAAt(3, 3); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("degenerate fill painted: %v", got)
	}
}
