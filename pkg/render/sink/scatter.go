package sink

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scatter-plot styling, matching the dark spacetime artifacts: near-black
// canvas, muted gray axes, points colored by their y value.
var (
	scatterBackground = color.RGBA{8, 8, 16, 255}
	scatterAxisColor  = color.RGBA{0x33, 0x33, 0x33, 255}
	scatterTickColor  = color.RGBA{0x88, 0x88, 0x88, 255}
	scatterLabelColor = color.RGBA{0xaa, 0xaa, 0xaa, 255}
)

// EncodeScatter writes a scatter plot of (xs[i], ys[i]) points to path,
// coloring each point by its y value on a black-body ramp. xs and ys must
// have the same length.
func EncodeScatter(xs, ys []float64, title, xLabel, yLabel, path string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("encode scatter %s: %d x values vs %d y values", path, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("encode scatter %s: no points", path)
	}

	pts := make(plotter.XYs, len(xs))
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("encode scatter %s: %w", path, err)
	}

	ramp := moreland.ExtendedBlackBody()
	ramp.SetMin(minY)
	if maxY == minY {
		maxY = minY + 1
	}
	ramp.SetMax(maxY)

	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := ramp.At(pts[i].Y)
		if err != nil {
			c = scatterTickColor
		}
		return draw.GlyphStyle{
			Color:  c,
			Radius: vg.Points(0.6),
			Shape:  draw.CircleGlyph{},
		}
	}

	p := plot.New()
	p.BackgroundColor = scatterBackground
	p.Title.Text = title
	p.Title.TextStyle.Color = color.White
	p.Title.Padding = vg.Points(6)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	styleAxis(&p.X)
	styleAxis(&p.Y)
	p.Add(sc)

	if err := p.Save(16*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("encode scatter %s: %w", path, err)
	}
	return nil
}

// styleAxis applies the dark theme to one axis.
func styleAxis(a *plot.Axis) {
	a.Label.TextStyle.Color = scatterLabelColor
	a.LineStyle.Color = scatterAxisColor
	a.Tick.LineStyle.Color = scatterAxisColor
	a.Tick.Label.Color = scatterTickColor
}
