package algorithm

import "pixel-art/internal/core"

func standard(buf *core.Buffer, ctx Context) {
	rowMajor(buf, ctx.PixelSize, func(int, int) core.Color {
		return ctx.Color()
	})
}

func horizontal(buf *core.Buffer, ctx Context) {
	var line core.Color
	rowMajor(buf, ctx.PixelSize, func(x, _ int) core.Color {
		if x == 0 {
			line = ctx.Color()
		}
		return line
	})
}

func vertical(buf *core.Buffer, ctx Context) {
	var line core.Color
	columnMajor(buf, ctx.PixelSize, func(_, y int) core.Color {
		if y == 0 {
			line = ctx.Color()
		}
		return line
	})
}

func horizontalVariance(buf *core.Buffer, ctx Context) {
	var line core.Color
	rowMajor(buf, ctx.PixelSize, func(x, _ int) core.Color {
		if x == 0 {
			line = ctx.Color()
		}
		return keepOrDraw(ctx, line, ctx.Params.LineProb)
	})
}

func verticalVariance(buf *core.Buffer, ctx Context) {
	var line core.Color
	columnMajor(buf, ctx.PixelSize, func(_, y int) core.Color {
		if y == 0 {
			line = ctx.Color()
		}
		return keepOrDraw(ctx, line, ctx.Params.LineProb)
	})
}

func sparse(buf *core.Buffer, ctx Context) {
	base := ctx.Color()
	columnMajor(buf, ctx.PixelSize, func(int, int) core.Color {
		return keepOrDraw(ctx, base, ctx.Params.SparseProb)
	})
}

// smearProb is the chance of carrying the previous color, nudged up for small
// pixel sizes.
func smearProb(ctx Context) float64 {
	return ctx.Params.SmearProb + ctx.Params.SmearProbAdjust/float64(ctx.PixelSize)
}

func winds(buf *core.Buffer, ctx Context) {
	last := ctx.Color()
	prob := smearProb(ctx)
	rowMajor(buf, ctx.PixelSize, func(int, int) core.Color {
		last = keepOrDraw(ctx, last, prob)
		return last
	})
}

func smear(buf *core.Buffer, ctx Context) {
	last := ctx.Color()
	prob := smearProb(ctx)
	columnMajor(buf, ctx.PixelSize, func(int, int) core.Color {
		last = keepOrDraw(ctx, last, prob)
		return last
	})
}

func keepOrDraw(ctx Context, keep core.Color, prob float64) core.Color {
	if ctx.RNG.Float64() < prob {
		return keep
	}
	return ctx.Color()
}
