// Package stats computes descriptive statistics about generated images.
package stats

import "math"

// Basic holds the statistics computed synchronously with every generation.
type Basic struct {
	// GenerationTime is the time spent synthesizing and blitting, in
	// milliseconds, floored.
	GenerationTime int
	// BlockCount is width*height/pixelSize^2 rounded to two decimals. Clipped
	// edge blocks count fractionally.
	BlockCount float64
	// TimesGenerated counts generations over the engine lifetime.
	TimesGenerated int
	// AverageGenerationTime is the floored mean of every recorded
	// generation time.
	AverageGenerationTime int
}

// BlockCount returns w*h/p^2 rounded to two decimals.
func BlockCount(w, h, p int) float64 {
	if p < 1 {
		p = 1
	}
	n := float64(w) * float64(h) / float64(p*p)
	return math.Round(n*100) / 100
}

// History accumulates lifetime generation timings.
type History struct {
	count int
	total int64
}

// Record adds one generation and returns the updated lifetime figures. The
// block count is left for the caller to fill in.
func (h *History) Record(ms int) Basic {
	h.count++
	h.total += int64(ms)
	return Basic{
		GenerationTime:        ms,
		TimesGenerated:        h.count,
		AverageGenerationTime: int(h.total / int64(h.count)),
	}
}

// Count returns the number of recorded generations.
func (h *History) Count() int { return h.count }
