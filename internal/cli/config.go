package cli

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"github.com/bour278/collatz-automata/pkg/collatz"
	"github.com/bour278/collatz-automata/pkg/scene"
)

// fileConfig mirrors the optional TOML config file. Every field is
// optional; absent fields keep the compiled-in scene defaults. Example:
//
//	out = "artifacts"
//
//	[spacetime]
//	n = 97
//	rule = "accelerated"
//	target_height = 850
//	delay_ms = 60
//
//	[parallel]
//	numbers = [7, 27, 97]
//	cell = 12
//
//	[scatter]
//	to = 10000
//
//	[landscape]
//	n = 27
//	rule = "standard"
//
//	[palette]
//	background = [8, 8, 16]
//	one = [232, 160, 32]
//	zero = [20, 34, 56]
//	hold = 30
type fileConfig struct {
	Out       string          `toml:"out"`
	Spacetime spacetimeConfig `toml:"spacetime"`
	Parallel  parallelConfig  `toml:"parallel"`
	Scatter   scatterConfig   `toml:"scatter"`
	Landscape landscapeConfig `toml:"landscape"`
	Palette   paletteConfig   `toml:"palette"`
}

type spacetimeConfig struct {
	N            *int64  `toml:"n"`
	Rule         *string `toml:"rule"`
	TargetHeight *int    `toml:"target_height"`
	DelayMS      *int    `toml:"delay_ms"`
}

type parallelConfig struct {
	Numbers []int64 `toml:"numbers"`
	Rule    *string `toml:"rule"`
	Cell    *int    `toml:"cell"`
	DelayMS *int    `toml:"delay_ms"`
}

type scatterConfig struct {
	From *int64  `toml:"from"`
	To   *int64  `toml:"to"`
	Rule *string `toml:"rule"`
}

type landscapeConfig struct {
	N    *int64  `toml:"n"`
	Rule *string `toml:"rule"`
	Cell *int    `toml:"cell"`
}

type paletteConfig struct {
	Background []int `toml:"background"` // [r, g, b]
	One        []int `toml:"one"`
	Zero       []int `toml:"zero"`
	Hold       *int  `toml:"hold"`
}

// loadConfig reads a TOML config file and applies its overrides on top of
// opts.
func loadConfig(path string, opts *scene.Options) error {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.apply(opts); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// apply copies the file's set fields onto opts.
func (c fileConfig) apply(opts *scene.Options) error {
	if c.Out != "" {
		opts.OutDir = c.Out
	}

	if c.Spacetime.N != nil {
		opts.Spacetime.N = *c.Spacetime.N
	}
	if c.Spacetime.TargetHeight != nil {
		opts.Spacetime.TargetHeight = *c.Spacetime.TargetHeight
	}
	if c.Spacetime.DelayMS != nil {
		opts.Spacetime.DelayMS = *c.Spacetime.DelayMS
	}
	if err := applyRule(c.Spacetime.Rule, &opts.Spacetime.Rule); err != nil {
		return fmt.Errorf("spacetime: %w", err)
	}

	if len(c.Parallel.Numbers) > 0 {
		opts.Parallel.Numbers = c.Parallel.Numbers
	}
	if c.Parallel.Cell != nil {
		opts.Parallel.Cell = *c.Parallel.Cell
	}
	if c.Parallel.DelayMS != nil {
		opts.Parallel.DelayMS = *c.Parallel.DelayMS
	}
	if err := applyRule(c.Parallel.Rule, &opts.Parallel.Rule); err != nil {
		return fmt.Errorf("parallel: %w", err)
	}

	if c.Scatter.From != nil {
		opts.Scatter.From = *c.Scatter.From
	}
	if c.Scatter.To != nil {
		opts.Scatter.To = *c.Scatter.To
	}
	if err := applyRule(c.Scatter.Rule, &opts.Scatter.Rule); err != nil {
		return fmt.Errorf("scatter: %w", err)
	}

	if c.Landscape.N != nil {
		opts.Landscape.N = *c.Landscape.N
	}
	if c.Landscape.Cell != nil {
		opts.Landscape.Cell = *c.Landscape.Cell
	}
	if err := applyRule(c.Landscape.Rule, &opts.Landscape.Rule); err != nil {
		return fmt.Errorf("landscape: %w", err)
	}

	return c.Palette.apply(opts)
}

// apply copies the palette overrides onto the single-trajectory config, and
// the shared ones (background, hold) onto both compositor configs.
func (p paletteConfig) apply(opts *scene.Options) error {
	if p.Background != nil {
		bg, err := parseRGB(p.Background)
		if err != nil {
			return fmt.Errorf("palette background: %w", err)
		}
		opts.Single.Background = bg
		opts.Multi.Background = bg
	}
	if p.One != nil {
		c, err := parseRGB(p.One)
		if err != nil {
			return fmt.Errorf("palette one: %w", err)
		}
		opts.Single.Palettes[0].One = c
	}
	if p.Zero != nil {
		c, err := parseRGB(p.Zero)
		if err != nil {
			return fmt.Errorf("palette zero: %w", err)
		}
		opts.Single.Palettes[0].Zero = c
	}
	if p.Hold != nil {
		opts.Single.Hold = *p.Hold
		opts.Multi.Hold = *p.Hold
	}
	return nil
}

// applyRule parses an optional rule string into dst.
func applyRule(s *string, dst *collatz.Rule) error {
	if s == nil {
		return nil
	}
	rule, err := collatz.ParseRule(*s)
	if err != nil {
		return err
	}
	*dst = rule
	return nil
}

// parseRGB converts a [r, g, b] triple into an opaque color.
func parseRGB(v []int) (color.RGBA, error) {
	if len(v) != 3 {
		return color.RGBA{}, fmt.Errorf("expected [r, g, b], got %v", v)
	}
	for _, ch := range v {
		if ch < 0 || ch > 255 {
			return color.RGBA{}, fmt.Errorf("channel %d out of range 0..255", ch)
		}
	}
	return color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 255}, nil
}
