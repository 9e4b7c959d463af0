package core

// Buffer stores an RGBA image in row-major order, four bytes per pixel.
type Buffer struct {
	W, H int
	Pix  []uint8
}

// NewBuffer allocates a zeroed buffer. Non-positive dimensions produce an
// empty buffer.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// Index returns the offset of pixel (x, y) in Pix.
func (b *Buffer) Index(x, y int) int { return (y*b.W + x) * 4 }

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.W && y < b.H
}

// At returns the RGB color stored at (x, y).
func (b *Buffer) At(x, y int) Color {
	i := b.Index(x, y)
	return Color{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}

// Set writes an opaque pixel at (x, y).
func (b *Buffer) Set(x, y int, c Color) {
	i := b.Index(x, y)
	b.Pix[i+0] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = 255
}

// FillBlock paints the size*size square whose top-left corner is (x, y),
// clipped to the buffer bounds.
func (b *Buffer) FillBlock(x, y, size int, c Color) {
	xMax := min(x+size, b.W)
	yMax := min(y+size, b.H)
	for py := max(y, 0); py < yMax; py++ {
		for px := max(x, 0); px < xMax; px++ {
			b.Set(px, py, c)
		}
	}
}

// Blocks returns the number of block columns and rows for the given pixel
// size, counting clipped edge blocks.
func (b *Buffer) Blocks(size int) (cols, rows int) {
	if size < 1 {
		size = 1
	}
	return (b.W + size - 1) / size, (b.H + size - 1) / size
}
