package engine

import (
	"strconv"

	"pixel-art/internal/algorithm"
	"pixel-art/internal/palette"
)

// Config controls the initial engine state.
type Config struct {
	// Width and Height resize the surface at construction when both are
	// positive. Otherwise the surface's own size is used.
	Width  int
	Height int

	PixelSize int
	Palette   palette.ID
	Algorithm algorithm.ID

	AdvancedStats bool
	TopColors     int

	// Randomize picks a random palette, algorithm and pixel size at
	// construction.
	Randomize      bool
	RandomPixelMin int
	RandomPixelMax int

	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64

	Palettes   palette.Params
	Algorithms algorithm.Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		PixelSize:      4,
		Palette:        palette.Random,
		Algorithm:      algorithm.Standard,
		AdvancedStats:  true,
		TopColors:      5,
		RandomPixelMin: 1,
		RandomPixelMax: 6,
		Palettes:       palette.DefaultParams(),
		Algorithms:     algorithm.DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for key, v := range cfg {
		switch key {
		case "palette":
			if id, err := palette.Lookup(v); err == nil {
				c.Palette = id
			}
		case "algorithm":
			if id, err := algorithm.Lookup(v); err == nil {
				c.Algorithm = id
			}
		case "advanced_stats":
			if parsed, err := strconv.ParseBool(v); err == nil {
				c.AdvancedStats = parsed
			}
		case "randomize":
			if parsed, err := strconv.ParseBool(v); err == nil {
				c.Randomize = parsed
			}
		case "w", "h", "pixel_size":
			if parsed, err := ParseDimension(v); err == nil {
				c.setInt(key, parsed)
			}
		case "seed":
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = parsed
			}
		default:
			if parsed, err := strconv.Atoi(v); err == nil && c.setInt(key, parsed) {
				continue
			}
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				c.setFloat(key, parsed)
			}
		}
	}
	return c.normalized()
}

// setInt applies an integer-valued key and reports whether it was known.
// Values are clamped to their valid range.
func (c *Config) setInt(key string, v int) bool {
	switch key {
	case "w":
		c.Width = max(v, 1)
	case "h":
		c.Height = max(v, 1)
	case "pixel_size":
		c.PixelSize = max(v, 1)
	case "top_colors":
		c.TopColors = max(v, 1)
	case "random_pixel_min":
		c.RandomPixelMin = max(v, 1)
	case "random_pixel_max":
		c.RandomPixelMax = max(v, 1)
	case "murica_variance":
		c.Palettes.MuricaVariance = max(v, 0)
	case "google_variance":
		c.Palettes.GoogleVariance = max(v, 0)
	case "plaid_min_thick":
		c.Algorithms.PlaidMinThick = max(v, 0)
	case "plaid_max_thick":
		c.Algorithms.PlaidMaxThick = max(v, 0)
	case "plaid_min_gap":
		c.Algorithms.PlaidMinGap = max(v, 0)
	default:
		return false
	}
	return true
}

// setFloat applies a float-valued key and reports whether it was known.
// Probabilities are clamped to [0, 1].
func (c *Config) setFloat(key string, v float64) bool {
	p := min(max(v, 0), 1)
	switch key {
	case "matrix_prob":
		c.Palettes.MatrixProb = p
	case "sparse_prob":
		c.Algorithms.SparseProb = p
	case "smear_prob":
		c.Algorithms.SmearProb = p
	case "smear_prob_adjust":
		c.Algorithms.SmearProbAdjust = p
	case "line_prob":
		c.Algorithms.LineProb = p
	case "cascade_prob":
		c.Algorithms.CascadeProb = p
	case "cascade_prob_adjust":
		c.Algorithms.CascadeProbAdjust = p
	case "plaid_prob":
		c.Algorithms.PlaidProb = p
	case "plaid_opacity":
		c.Algorithms.PlaidOpacity = p
	default:
		return false
	}
	return true
}

// normalized clamps every field to a usable value.
func (c Config) normalized() Config {
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	c.PixelSize = max(c.PixelSize, 1)
	if c.TopColors < 1 {
		c.TopColors = 5
	}
	c.RandomPixelMin = max(c.RandomPixelMin, 1)
	c.RandomPixelMax = max(c.RandomPixelMax, c.RandomPixelMin)
	if c.Algorithms.PlaidMaxThick < c.Algorithms.PlaidMinThick {
		c.Algorithms.PlaidMaxThick = c.Algorithms.PlaidMinThick
	}
	return c
}
