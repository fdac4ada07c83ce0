package render

import "image/color"

// Palette is the pair of colors a trajectory's bits are painted with.
type Palette struct {
	One  color.RGBA // 1 bits
	Zero color.RGBA // 0 bits
}

// Highlight returns the palette brightened by the given per-channel boosts,
// used for the most recently painted row.
func (p Palette) Highlight(oneBoost, zeroBoost int) Palette {
	return Palette{
		One:  Brighten(p.One, oneBoost),
		Zero: Brighten(p.Zero, zeroBoost),
	}
}

// Brighten adds amt to each RGB channel, saturating at 255.
func Brighten(c color.RGBA, amt int) color.RGBA {
	add := func(v uint8) uint8 {
		n := int(v) + amt
		if n > 255 {
			n = 255
		}
		if n < 0 {
			n = 0
		}
		return uint8(n)
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}

// Config carries everything the compositor needs to paint: colors, highlight
// boosts, and layout constants. It is passed in explicitly so tests can
// inject deterministic palettes; there is no package-level color state.
type Config struct {
	// Background fills the canvas before any row is painted. Unset cells
	// are skipped during painting and keep this color.
	Background color.RGBA

	// Palettes are cycled by trajectory index when compositing several
	// trajectories side by side. Single-trajectory scenes use Palettes[0].
	Palettes []Palette

	// HighlightOne and HighlightZero are the per-channel boosts applied to
	// the most recently painted row before it settles to base colors.
	HighlightOne  int
	HighlightZero int

	// Margin is the pixel border around the grid in animated scenes.
	Margin int

	// GapCols is the number of empty spacer columns between adjacent
	// trajectories in the parallel scene.
	GapCols int

	// Hold is how many copies of the settled final frame are appended so
	// the animation pauses visibly before looping.
	Hold int
}

// Palette returns the palette for trajectory idx, cycling through the
// configured list. A config without palettes yields the zero palette.
func (c Config) Palette(idx int) Palette {
	if len(c.Palettes) == 0 {
		return Palette{}
	}
	return c.Palettes[idx%len(c.Palettes)]
}

// QuantPalette returns the exact set of colors the compositor can emit
// under this config: the background plus every palette's base and
// highlighted pairs. Frames painted with the config quantize losslessly
// against it, so GIF encoding needs no color search beyond an exact match.
func (c Config) QuantPalette() color.Palette {
	pal := color.Palette{c.Background}
	for _, p := range c.Palettes {
		hi := p.Highlight(c.HighlightOne, c.HighlightZero)
		pal = append(pal, p.One, p.Zero, hi.One, hi.Zero)
	}
	return pal
}

// DefaultConfig is the single-trajectory configuration: amber ones over
// deep blue zeros on a near-black background.
func DefaultConfig() Config {
	return Config{
		Background: color.RGBA{8, 8, 16, 255},
		Palettes: []Palette{
			{One: color.RGBA{232, 160, 32, 255}, Zero: color.RGBA{20, 34, 56, 255}},
		},
		HighlightOne:  40,
		HighlightZero: 14,
		Margin:        10,
		GapCols:       2,
		Hold:          30,
	}
}

// MultiConfig is the parallel-scene configuration: one distinct palette per
// trajectory (red, green, blue, yellow), with slightly gentler highlights
// than the single-trajectory scene.
func MultiConfig() Config {
	return Config{
		Background: color.RGBA{8, 8, 16, 255},
		Palettes: []Palette{
			{One: color.RGBA{240, 80, 45, 255}, Zero: color.RGBA{52, 20, 12, 255}},
			{One: color.RGBA{55, 210, 95, 255}, Zero: color.RGBA{14, 45, 22, 255}},
			{One: color.RGBA{80, 145, 245, 255}, Zero: color.RGBA{18, 34, 58, 255}},
			{One: color.RGBA{230, 195, 55, 255}, Zero: color.RGBA{50, 42, 14, 255}},
		},
		HighlightOne:  35,
		HighlightZero: 10,
		Margin:        10,
		GapCols:       2,
		Hold:          30,
	}
}
