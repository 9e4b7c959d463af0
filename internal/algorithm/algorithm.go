// Package algorithm implements the spatial arrangement strategies that turn a
// palette into a full RGBA buffer.
package algorithm

import (
	"fmt"

	"pixel-art/internal/core"
	prng "pixel-art/pkg/core"
)

// ID enumerates the built-in algorithms.
type ID uint8

const (
	Standard ID = iota
	Horizontal
	Vertical
	HorizontalVariance
	VerticalVariance
	Sparse
	Winds
	Smear
	Cascade
	Plaid
	Rings

	count
)

var names = [count]string{
	Standard:           "Standard",
	Horizontal:         "Horizontal",
	Vertical:           "Vertical",
	HorizontalVariance: "Horizontal (variance)",
	VerticalVariance:   "Vertical (variance)",
	Sparse:             "Sparse",
	Winds:              "Winds",
	Smear:              "Smear",
	Cascade:            "Cascade",
	Plaid:              "Plaid",
	Rings:              "Rings",
}

// String returns the display name of the algorithm.
func (id ID) String() string {
	if id >= count {
		return fmt.Sprintf("algorithm(%d)", uint8(id))
	}
	return names[id]
}

// Valid reports whether id names a built-in algorithm.
func (id ID) Valid() bool { return id < count }

// All lists every algorithm in display order.
func All() []ID {
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Names lists the algorithm names in display order.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Lookup resolves an algorithm by its display name.
func Lookup(name string) (ID, error) {
	for i, n := range names {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidSelection, name)
}

// Params holds the probabilities and band sizes used by the algorithms.
type Params struct {
	SparseProb        float64
	SmearProb         float64
	SmearProbAdjust   float64
	LineProb          float64
	CascadeProb       float64
	CascadeProbAdjust float64
	PlaidProb         float64
	PlaidMinThick     int
	PlaidMaxThick     int
	PlaidMinGap       int
	PlaidOpacity      float64
}

// DefaultParams returns the standard algorithm tunables.
func DefaultParams() Params {
	return Params{
		SparseProb:        0.85,
		SmearProb:         0.9,
		SmearProbAdjust:   0.08,
		LineProb:          0.6,
		CascadeProb:       0.975,
		CascadeProbAdjust: 0.02,
		PlaidProb:         0.07,
		PlaidMinThick:     3,
		PlaidMaxThick:     5,
		PlaidMinGap:       5,
		PlaidOpacity:      0.7,
	}
}

// Context carries the image geometry, the active palette and the random
// source into an algorithm run.
type Context struct {
	Width     int
	Height    int
	PixelSize int
	Color     func() core.Color
	RNG       *prng.RNG
	Params    Params
}

// Run synthesizes a complete buffer for ctx.
func (id ID) Run(ctx Context) *core.Buffer {
	if ctx.PixelSize < 1 {
		ctx.PixelSize = 1
	}
	buf := core.NewBuffer(ctx.Width, ctx.Height)
	switch id {
	case Horizontal:
		horizontal(buf, ctx)
	case Vertical:
		vertical(buf, ctx)
	case HorizontalVariance:
		horizontalVariance(buf, ctx)
	case VerticalVariance:
		verticalVariance(buf, ctx)
	case Sparse:
		sparse(buf, ctx)
	case Winds:
		winds(buf, ctx)
	case Smear:
		smear(buf, ctx)
	case Cascade:
		cascade(buf, ctx)
	case Plaid:
		plaid(buf, ctx)
	case Rings:
		rings(buf, ctx)
	default:
		standard(buf, ctx)
	}
	return buf
}

// blockFunc picks the color of the block whose top-left pixel is (x, y).
type blockFunc func(x, y int) core.Color

// rowMajor visits blocks left to right, top to bottom.
func rowMajor(buf *core.Buffer, size int, fn blockFunc) {
	for y := 0; y < buf.H; y += size {
		for x := 0; x < buf.W; x += size {
			buf.FillBlock(x, y, size, fn(x, y))
		}
	}
}

// columnMajor visits blocks top to bottom, left to right.
func columnMajor(buf *core.Buffer, size int, fn blockFunc) {
	for x := 0; x < buf.W; x += size {
		for y := 0; y < buf.H; y += size {
			buf.FillBlock(x, y, size, fn(x, y))
		}
	}
}
