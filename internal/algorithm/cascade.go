package algorithm

import "pixel-art/internal/core"

// cascade copies the color above or to the left of each block, spreading
// colors down and to the right like a flood fill.
func cascade(buf *core.Buffer, ctx Context) {
	prob := ctx.Params.CascadeProb + ctx.Params.CascadeProbAdjust/float64(ctx.PixelSize)
	rowMajor(buf, ctx.PixelSize, func(x, y int) core.Color {
		r := ctx.RNG.Float64()
		above, hasAbove := neighbor(buf, x, y-1)
		left, hasLeft := neighbor(buf, x-1, y)
		switch {
		case r < prob/2:
			return firstOf(ctx, above, hasAbove, left, hasLeft)
		case r < prob:
			return firstOf(ctx, left, hasLeft, above, hasAbove)
		default:
			return ctx.Color()
		}
	})
}

func neighbor(buf *core.Buffer, x, y int) (core.Color, bool) {
	if !buf.In(x, y) {
		return core.Color{}, false
	}
	return buf.At(x, y), true
}

// firstOf returns the first available neighbor, drawing a fresh color when
// neither exists.
func firstOf(ctx Context, a core.Color, hasA bool, b core.Color, hasB bool) core.Color {
	if hasA {
		return a
	}
	if hasB {
		return b
	}
	return ctx.Color()
}
