package stats

import (
	"fmt"
	"math"
	"slices"
	"time"

	"pixel-art/internal/core"
)

// DefaultTopN is the number of most frequent colors reported when the caller
// does not ask for a specific count.
const DefaultTopN = 5

// Swatch is a color together with a score: its channel sum for extremes, its
// occurrence count for frequencies and runs.
type Swatch struct {
	Color core.Color
	Hex   string
	Value int
}

func swatch(c core.Color, v int) Swatch {
	return Swatch{Color: c, Hex: RGBToHex(c), Value: v}
}

// Advanced holds the statistics computed in the background after a
// generation.
type Advanced struct {
	// CalculationTime is the time spent in ComputeAdvanced.
	CalculationTime time.Duration
	// Blocks is the number of sampled blocks.
	Blocks int
	// UniqueColors counts distinct block colors.
	UniqueColors int
	// Darkest and Lightest carry the channel sum in Value.
	Darkest  Swatch
	Lightest Swatch
	// TopColors lists the most frequent colors, count in Value, ties in
	// first-encounter order.
	TopColors []Swatch
	// LongestRun is the longest stretch of identical consecutive blocks in
	// row-major order, length in Value.
	LongestRun Swatch
	// Average is the per-channel mean over sampled blocks, rounded half up.
	Average Swatch
}

// ComputeAdvanced scans the block grid of buf in row-major order, sampling
// the top-left pixel of each block, and returns the topN most frequent
// colors along with the other block statistics. topN < 1 selects
// DefaultTopN.
func ComputeAdvanced(buf *core.Buffer, pixelSize, topN int) (*Advanced, error) {
	start := time.Now()
	if buf == nil || buf.W <= 0 || buf.H <= 0 {
		return nil, core.ErrEmptyBuffer
	}
	if len(buf.Pix) != buf.W*buf.H*4 {
		return nil, fmt.Errorf("stats: %dx%d buffer with %d bytes: %w", buf.W, buf.H, len(buf.Pix), core.ErrBufferSizeMismatch)
	}
	if pixelSize < 1 {
		pixelSize = 1
	}
	if topN < 1 {
		topN = DefaultTopN
	}

	counts := make(map[int]int)
	var order []int

	darkest := core.RGB(255, 255, 255)
	darkestSum := darkest.Sum()
	var lightest core.Color
	lightestSum := 0

	var (
		run     core.Color
		runLen  int
		best    core.Color
		bestLen int
		sums    [3]int
		sampled int
	)

	for y := 0; y < buf.H; y += pixelSize {
		for x := 0; x < buf.W; x += pixelSize {
			c := buf.At(x, y)
			sampled++

			key := c.Pack()
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++

			sum := c.Sum()
			if sum < darkestSum {
				darkest, darkestSum = c, sum
			}
			if sum > lightestSum {
				lightest, lightestSum = c, sum
			}

			if runLen > 0 && c == run {
				runLen++
			} else {
				run, runLen = c, 1
			}
			if runLen > bestLen {
				best, bestLen = run, runLen
			}

			sums[0] += int(c.R)
			sums[1] += int(c.G)
			sums[2] += int(c.B)
		}
	}

	top := make([]Swatch, 0, len(order))
	for _, key := range order {
		top = append(top, swatch(core.Unpack(key), counts[key]))
	}
	slices.SortStableFunc(top, func(a, b Swatch) int { return b.Value - a.Value })
	if len(top) > topN {
		top = top[:topN]
	}

	avg := core.RGB(roundDiv(sums[0], sampled), roundDiv(sums[1], sampled), roundDiv(sums[2], sampled))

	return &Advanced{
		CalculationTime: time.Since(start),
		Blocks:          sampled,
		UniqueColors:    len(order),
		Darkest:         swatch(darkest, darkestSum),
		Lightest:        swatch(lightest, lightestSum),
		TopColors:       top,
		LongestRun:      swatch(best, bestLen),
		Average:         swatch(avg, avg.Sum()),
	}, nil
}

// roundDiv divides and rounds half up.
func roundDiv(sum, n int) uint8 {
	return uint8(math.Floor(float64(sum)/float64(n) + 0.5))
}
