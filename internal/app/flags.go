package app

import (
	"flag"
	"fmt"
	"time"

	"pixel-art/internal/algorithm"
	"pixel-art/internal/engine"
	"pixel-art/internal/palette"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width         int
	Height        int
	Scale         int
	PixelSize     int
	Palette       string
	Algorithm     string
	Randomize     bool
	AdvancedStats bool
	Auto          bool
	Interval      time.Duration
	Seed          int64
	TPS           int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:         480,
		Height:        360,
		Scale:         1,
		PixelSize:     4,
		Palette:       palette.Random.String(),
		Algorithm:     algorithm.Standard.String(),
		Randomize:     true,
		AdvancedStats: true,
		Interval:      5 * time.Second,
		TPS:           60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "image width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "image height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.PixelSize, "pixel", c.PixelSize, "block size in pixels")
	fs.StringVar(&c.Palette, "palette", c.Palette, "color palette")
	fs.StringVar(&c.Algorithm, "algorithm", c.Algorithm, "spatial algorithm")
	fs.BoolVar(&c.Randomize, "randomize", c.Randomize, "start from a random palette, algorithm and pixel size")
	fs.BoolVar(&c.AdvancedStats, "stats", c.AdvancedStats, "compute advanced statistics")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "regenerate automatically")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "automatic regeneration period")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a clock seed")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// EngineConfig converts the flags into an engine configuration.
func (c *Config) EngineConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	p, err := palette.Lookup(c.Palette)
	if err != nil {
		return cfg, fmt.Errorf("-palette: %w", err)
	}
	a, err := algorithm.Lookup(c.Algorithm)
	if err != nil {
		return cfg, fmt.Errorf("-algorithm: %w", err)
	}
	cfg.Width = max(c.Width, 1)
	cfg.Height = max(c.Height, 1)
	cfg.PixelSize = max(c.PixelSize, 1)
	cfg.Palette = p
	cfg.Algorithm = a
	cfg.Randomize = c.Randomize
	cfg.AdvancedStats = c.AdvancedStats
	cfg.Seed = c.Seed
	return cfg, nil
}
