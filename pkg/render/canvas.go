package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Canvas is the mutable raster surface the compositor paints onto. Exactly
// one logical writer mutates it per artifact; frames are taken with
// [Canvas.Snapshot], which always copies.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
}

// NewCanvas allocates a width × height canvas filled with the background
// color.
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	return &Canvas{dc: dc, width: width, height: height}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// FillRect fills the inclusive pixel rectangle from (x0,y0) to (x1,y1). Degenerate
// rectangles (x1 < x0 or y1 < y0) are skipped.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.RGBA) {
	if x1 < x0 || y1 < y0 {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0+1), float64(y1-y0+1))
	c.dc.Fill()
}

// Snapshot returns an independent copy of the current canvas contents.
// Later mutations of the canvas never show through a snapshot, so a frame
// sequence can hold many snapshots of the same canvas.
func (c *Canvas) Snapshot() *image.RGBA {
	src := c.dc.Image().(*image.RGBA)
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
