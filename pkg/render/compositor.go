// Package render turns bit grids into raster frames.
//
// The compositor owns a mutable [Canvas] and paints grid rows onto it
// top-to-bottom, snapshotting after each row so the resulting frame sequence
// animates the trajectory being written. The most recent row is painted in
// brightened highlight colors and settled to base colors one step later;
// after the last row settles, the final frame is repeated for a configurable
// hold so the looping animation pauses visibly.
//
// All geometry and colors come from an explicit [Config]; the package keeps
// no global state and every call composites onto its own canvas.
package render

import (
	"image"

	"github.com/bour278/collatz-automata/pkg/bitgrid"
)

// Cell-size clamp and gap threshold for animated scenes. Below gapThreshold
// the 1px inset would eat most of the cell, so it is omitted.
const (
	minCell      = 4
	maxCell      = 20
	gapThreshold = 8
)

// cellSize derives the pixel size of one grid cell from the target output
// height, clamped to [minCell, maxCell].
func cellSize(targetHeight, rows int) int {
	cell := targetHeight / rows
	if cell < minCell {
		cell = minCell
	}
	if cell > maxCell {
		cell = maxCell
	}
	return cell
}

// cellGap returns the inset drawn inside each cell at the given cell size.
func cellGap(cell int) int {
	if cell >= gapThreshold {
		return 1
	}
	return 0
}

// paintRow paints one grid row onto the canvas with the given palette.
// colOff shifts the row right by whole cells, which is how the parallel
// scene places trajectories side by side. Unset cells are skipped.
func paintRow(cv *Canvas, g bitgrid.Grid, row, colOff, cell, gap, margin int, pal Palette) {
	for j := 0; j < g.Cols(); j++ {
		c := g.At(row, j)
		if c == bitgrid.Unset {
			continue
		}
		col := pal.Zero
		if c == bitgrid.One {
			col = pal.One
		}
		px := margin + (colOff+j)*cell
		py := margin + row*cell
		cv.FillRect(px+gap, py+gap, px+cell-gap-1, py+cell-gap-1, col)
	}
}

// Spacetime composites a single trajectory's grid into an animated frame
// sequence. Each frame settles the previous row to base colors, paints the
// current row highlighted, and snapshots; the settled final canvas is
// appended cfg.Hold times. Frame count is therefore rows + cfg.Hold.
//
// targetHeight controls cell sizing only; the actual canvas height is
// rows·cell plus margins.
func Spacetime(g bitgrid.Grid, cfg Config, targetHeight int) []*image.RGBA {
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}

	cell := cellSize(targetHeight, rows)
	gap := cellGap(cell)
	w := cols*cell + 2*cfg.Margin
	h := rows*cell + 2*cfg.Margin

	base := cfg.Palette(0)
	hi := base.Highlight(cfg.HighlightOne, cfg.HighlightZero)

	cv := NewCanvas(w, h, cfg.Background)
	frames := make([]*image.RGBA, 0, rows+cfg.Hold)

	for r := 0; r < rows; r++ {
		if r > 0 {
			paintRow(cv, g, r-1, 0, cell, gap, cfg.Margin, base)
		}
		paintRow(cv, g, r, 0, cell, gap, cfg.Margin, hi)
		frames = append(frames, cv.Snapshot())
	}

	// Settle the last highlight, then hold on the finished diagram. The
	// settled frame replaces nothing: it is the first of the hold copies.
	paintRow(cv, g, rows-1, 0, cell, gap, cfg.Margin, base)
	final := cv.Snapshot()
	for i := 0; i < cfg.Hold; i++ {
		frames = append(frames, final)
	}
	return frames
}

// Parallel composites several grids side by side into one synchronized
// frame sequence. Within each time step every trajectory's current row is
// settled-then-highlighted with its own palette (cycled by index); grids
// shorter than the current step are skipped rather than erroring. The
// animation runs for max(rows) steps plus the hold.
//
// cell is the fixed cell size in pixels; the parallel scene does not derive
// it from a target height because trajectories of very different lengths
// share one canvas.
func Parallel(grids []bitgrid.Grid, cfg Config, cell int) []*image.RGBA {
	if len(grids) == 0 {
		return nil
	}

	maxRows := 0
	colOffsets := make([]int, len(grids))
	off := 0
	for i, g := range grids {
		colOffsets[i] = off
		off += g.Cols() + cfg.GapCols
		if g.Rows() > maxRows {
			maxRows = g.Rows()
		}
	}
	totalCols := off - cfg.GapCols
	if maxRows == 0 || totalCols <= 0 {
		return nil
	}

	gap := cellGap(cell)
	w := totalCols*cell + 2*cfg.Margin
	h := maxRows*cell + 2*cfg.Margin

	cv := NewCanvas(w, h, cfg.Background)
	frames := make([]*image.RGBA, 0, maxRows+cfg.Hold)

	paint := func(idx, row int, highlight bool) {
		g := grids[idx]
		if row < 0 || row >= g.Rows() {
			return
		}
		pal := cfg.Palette(idx)
		if highlight {
			pal = pal.Highlight(cfg.HighlightOne, cfg.HighlightZero)
		}
		paintRow(cv, g, row, colOffsets[idx], cell, gap, cfg.Margin, pal)
	}

	for r := 0; r < maxRows; r++ {
		for idx := range grids {
			if r > 0 {
				paint(idx, r-1, false)
			}
			paint(idx, r, true)
		}
		frames = append(frames, cv.Snapshot())
	}

	for idx := range grids {
		paint(idx, grids[idx].Rows()-1, false)
	}
	final := cv.Snapshot()
	for i := 0; i < cfg.Hold; i++ {
		frames = append(frames, final)
	}
	return frames
}

// Landscape paints the whole grid once in base colors and returns the
// single resulting image. No highlight pass, no margin, no cell inset; the
// static artifact is a dense bit landscape.
func Landscape(g bitgrid.Grid, cfg Config, cell int) *image.RGBA {
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}

	cv := NewCanvas(cols*cell, rows*cell, cfg.Background)
	base := cfg.Palette(0)

	for i := 0; i < rows; i++ {
		paintRow(cv, g, i, 0, cell, 0, 0, base)
	}
	return cv.Snapshot()
}
