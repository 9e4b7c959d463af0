package core

// Color is an opaque RGB triple. Colors are values, so a single color can be
// reused across many blocks without callers being able to alter it.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Pack encodes the color as r*65536 + g*256 + b.
func (c Color) Pack() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// Unpack reverses Pack.
func Unpack(n int) Color {
	return Color{
		R: uint8(n / 65536 % 256),
		G: uint8(n / 256 % 256),
		B: uint8(n % 256),
	}
}

// Sum returns r+g+b, used to rank colors from dark to light.
func (c Color) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}
