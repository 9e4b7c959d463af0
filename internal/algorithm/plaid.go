package algorithm

import (
	"math"

	"pixel-art/internal/core"
	"pixel-art/internal/render"
)

// band tracks a stripe in progress: how many more blocks it covers and how
// many blocks must pass before the next one may start.
type band struct {
	thickness int
	gap       int
}

func (b *band) start(ctx Context) {
	p := ctx.Params
	b.thickness = int(math.Floor(ctx.RNG.Float64()*float64(p.PlaidMaxThick-p.PlaidMinThick)+0.5)) + p.PlaidMinThick
	b.gap = p.PlaidMinGap
}

// plaid weaves horizontal and vertical stripes over a main color. Row 0 lays
// down the vertical stripes; every later row repeats that pattern and blends
// an active horizontal stripe over it.
func plaid(buf *core.Buffer, ctx Context) {
	p := ctx.Params
	base := ctx.Color()
	cols, _ := buf.Blocks(ctx.PixelSize)
	pattern := make([]core.Color, 0, cols)

	var column, row band
	var rowColor core.Color

	rowMajor(buf, ctx.PixelSize, func(x, y int) core.Color {
		if x == 0 {
			if y > 0 {
				row.advance()
			}
			if row.thickness == 0 && row.gap == 0 && ctx.RNG.Float64() < p.PlaidProb {
				rowColor = ctx.Color()
				row.start(ctx)
			}
		}

		if y == 0 {
			var c core.Color
			switch {
			case column.thickness > 0:
				c = buf.At(x-1, y)
				column.thickness--
			default:
				if column.gap > 0 {
					column.gap--
				}
				if column.gap == 0 && ctx.RNG.Float64() < p.PlaidProb {
					c = render.Blend(base, ctx.Color(), p.PlaidOpacity)
					column.start(ctx)
				} else {
					c = base
				}
			}
			pattern = append(pattern, c)
			return c
		}

		under := pattern[x/ctx.PixelSize]
		if row.thickness > 0 && differsInEveryChannel(rowColor, base) {
			return render.Blend(under, rowColor, p.PlaidOpacity)
		}
		return under
	})
}

func differsInEveryChannel(a, b core.Color) bool {
	return a.R != b.R && a.G != b.G && a.B != b.B
}

// advance moves a row stripe forward by one row.
func (b *band) advance() {
	if b.thickness > 0 {
		b.thickness--
	} else if b.gap > 0 {
		b.gap--
	}
}
