package sink

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// EncodeAnimation writes frames as a looping animated GIF with the given
// inter-frame delay. pal should contain every color the frames use (see
// [render.Config.QuantPalette]); if nil, the web-safe Plan9 palette is used
// and colors are matched approximately.
func EncodeAnimation(frames []*image.RGBA, path string, delayMS int, pal color.Palette) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode animation %s: no frames", path)
	}
	if pal == nil {
		pal = palette.Plan9
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0, // loop forever
	}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), pal)
		draw.Draw(p, p.Bounds(), frame, frame.Bounds().Min, draw.Src)
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delayMS/10) // GIF delay is in 10ms units
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode animation %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode animation %s: %w", path, err)
	}
	return f.Close()
}
