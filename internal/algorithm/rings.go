package algorithm

import (
	"math"

	"pixel-art/internal/core"
)

// rings colors blocks by their integer distance from the image center, in
// block units. Each ring draws its color the first time it is reached.
func rings(buf *core.Buffer, ctx Context) {
	size := float64(ctx.PixelSize)
	cx := float64(buf.W) / 2
	cy := float64(buf.H) / 2
	colors := map[int]core.Color{}
	rowMajor(buf, ctx.PixelSize, func(x, y int) core.Color {
		rx := (float64(x) - cx) / size
		ry := (float64(y) - cy) / size
		ring := int(math.Floor(math.Sqrt(rx*rx + ry*ry)))
		c, ok := colors[ring]
		if !ok {
			c = ctx.Color()
			colors[ring] = c
		}
		return c
	})
}
