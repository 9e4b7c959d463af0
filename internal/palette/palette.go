// Package palette implements the named color-selection strategies.
package palette

import (
	"fmt"
	"math"

	"pixel-art/internal/core"
	prng "pixel-art/pkg/core"
)

// ID enumerates the built-in palettes.
type ID uint8

const (
	Random ID = iota
	Warm
	Cool
	Nature
	Matrix
	BlackAndWhite
	Camouflage
	Rainbow
	Murica
	Google
	OfTheDay

	count
)

var names = [count]string{
	Random:        "Random",
	Warm:          "Warm",
	Cool:          "Cool",
	Nature:        "Nature",
	Matrix:        "Matrix",
	BlackAndWhite: "Black & White",
	Camouflage:    "Camouflage",
	Rainbow:       "Rainbow",
	Murica:        "'Murica",
	Google:        "Google",
	OfTheDay:      "Of the Day",
}

// String returns the display name of the palette.
func (id ID) String() string {
	if id >= count {
		return fmt.Sprintf("palette(%d)", uint8(id))
	}
	return names[id]
}

// Valid reports whether id names a built-in palette.
func (id ID) Valid() bool { return id < count }

// All lists every palette in display order.
func All() []ID {
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Names lists the palette names in display order.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Lookup resolves a palette by its display name.
func Lookup(name string) (ID, error) {
	for i, n := range names {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown palette %q", core.ErrInvalidSelection, name)
}

// Params holds the tunables used by the probabilistic and jittered palettes.
type Params struct {
	MatrixProb     float64
	MuricaVariance int
	GoogleVariance int
}

// DefaultParams returns the standard palette tunables.
func DefaultParams() Params {
	return Params{
		MatrixProb:     0.35,
		MuricaVariance: 15,
		GoogleVariance: 20,
	}
}

// Context is everything a palette needs to produce colors.
type Context struct {
	RNG    *prng.RNG
	Params Params
	Daily  DailyRange
}

// Func produces one color per call.
type Func func() core.Color

var (
	camouflageColors = []core.Color{
		core.RGB(96, 68, 57),
		core.RGB(158, 154, 117),
		core.RGB(28, 34, 46),
		core.RGB(65, 83, 59),
		core.RGB(85, 72, 64),
	}
	rainbowColors = []core.Color{
		core.RGB(248, 12, 18),
		core.RGB(238, 17, 0),
		core.RGB(255, 51, 27),
		core.RGB(255, 68, 34),
		core.RGB(255, 102, 68),
		core.RGB(255, 153, 51),
		core.RGB(254, 174, 45),
		core.RGB(204, 187, 51),
		core.RGB(208, 195, 16),
		core.RGB(170, 204, 34),
		core.RGB(105, 208, 37),
		core.RGB(34, 204, 170),
		core.RGB(18, 204, 170),
		core.RGB(17, 170, 187),
		core.RGB(68, 68, 221),
		core.RGB(51, 17, 187),
		core.RGB(59, 12, 189),
		core.RGB(68, 34, 153),
	}
	muricaColors = []core.Color{
		core.RGB(191, 10, 48),
		core.RGB(0, 40, 104),
		core.RGB(255, 255, 255),
	}
	googleColors = []core.Color{
		core.RGB(60, 186, 84),
		core.RGB(244, 194, 13),
		core.RGB(219, 50, 54),
		core.RGB(72, 133, 237),
	}
)

// Bind returns the color function for id operating on ctx.
func (id ID) Bind(ctx Context) Func {
	r := ctx.RNG
	switch id {
	case Warm:
		return func() core.Color { return draw(r, 150, 255, 0, 100, 0, 100) }
	case Cool:
		return func() core.Color { return draw(r, 0, 125, 0, 125, 150, 255) }
	case Nature:
		return func() core.Color { return draw(r, 40, 120, 100, 200, 40, 120) }
	case Matrix:
		prob := ctx.Params.MatrixProb
		return func() core.Color {
			var g int
			if r.Float64() < prob {
				g = r.IntBetween(160, 220)
			}
			return core.Color{G: uint8(g)}
		}
	case BlackAndWhite:
		return func() core.Color {
			shade := uint8(r.IntBetween(0, 255))
			return core.Color{R: shade, G: shade, B: shade}
		}
	case Camouflage:
		return func() core.Color { return prng.Pick(r, camouflageColors) }
	case Rainbow:
		return func() core.Color { return prng.Pick(r, rainbowColors) }
	case Murica:
		v := ctx.Params.MuricaVariance
		return func() core.Color { return jitter(r, prng.Pick(r, muricaColors), v) }
	case Google:
		v := ctx.Params.GoogleVariance
		return func() core.Color { return jitter(r, prng.Pick(r, googleColors), v) }
	case OfTheDay:
		d := ctx.Daily
		return func() core.Color {
			return draw(r, d.Red[0], d.Red[1], d.Green[0], d.Green[1], d.Blue[0], d.Blue[1])
		}
	default:
		return func() core.Color { return draw(r, 0, 255, 0, 255, 0, 255) }
	}
}

func draw(r *prng.RNG, rLo, rHi, gLo, gHi, bLo, bHi int) core.Color {
	return core.Color{
		R: uint8(r.IntBetween(rLo, rHi)),
		G: uint8(r.IntBetween(gLo, gHi)),
		B: uint8(r.IntBetween(bLo, bHi)),
	}
}

// jitter offsets each channel by floor(u*2v - v) and clamps to [0, 255].
func jitter(r *prng.RNG, c core.Color, variance int) core.Color {
	offset := func(ch uint8) uint8 {
		d := int(math.Floor(r.Float64()*float64(variance)*2 - float64(variance)))
		return clamp(int(ch) + d)
	}
	return core.Color{R: offset(c.R), G: offset(c.G), B: offset(c.B)}
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
