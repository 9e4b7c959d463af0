package stats

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"pixel-art/internal/core"
)

// RGBToHex formats c as a lowercase, zero padded "#rrggbb" string.
func RGBToHex(c core.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// PackedToHex formats a packed r*65536+g*256+b integer.
func PackedToHex(n int) string {
	return RGBToHex(core.Unpack(n))
}

// HexToRGB parses "#rrggbb" or "#rgb". The leading '#' is optional.
func HexToRGB(s string) (core.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}
