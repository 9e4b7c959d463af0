package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"pixel-art/internal/algorithm"
	"pixel-art/internal/engine"
	"pixel-art/internal/palette"
)

// ImageFlags are shared by the commands that build a single engine.
type ImageFlags struct {
	Width     int    `help:"Image width in pixels" default:"256" short:"W"`
	Height    int    `help:"Image height in pixels" default:"256" short:"H"`
	PixelSize int    `help:"Block size in pixels" default:"4" short:"p"`
	Palette   string `help:"Palette name" default:"Random"`
	Algorithm string `help:"Algorithm name" default:"Standard"`
	Randomize bool   `help:"Pick a random palette, algorithm and pixel size"`
	Top       int    `help:"Number of most frequent colors to report" default:"5"`
	NoStats   bool   `help:"Skip advanced statistics"`
}

// Validate rejects unknown palette and algorithm names before a command runs.
func (f *ImageFlags) Validate(kctx *kong.Context) error {
	if _, err := palette.Lookup(f.Palette); err != nil {
		return fmt.Errorf("--palette: %w (have %q)", err, palette.Names())
	}
	if _, err := algorithm.Lookup(f.Algorithm); err != nil {
		return fmt.Errorf("--algorithm: %w (have %q)", err, algorithm.Names())
	}
	if f.Top < 1 {
		return fmt.Errorf("--top must be at least 1, got %d", f.Top)
	}
	return nil
}

// config converts the flags into an engine configuration. Dimensions are
// clamped by the engine.
func (f *ImageFlags) config(seed int64) engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Width = max(f.Width, 1)
	cfg.Height = max(f.Height, 1)
	cfg.PixelSize = f.PixelSize
	cfg.Palette, _ = palette.Lookup(f.Palette)
	cfg.Algorithm, _ = algorithm.Lookup(f.Algorithm)
	cfg.Randomize = f.Randomize
	cfg.TopColors = f.Top
	cfg.AdvancedStats = !f.NoStats
	cfg.Seed = seed
	return cfg
}
