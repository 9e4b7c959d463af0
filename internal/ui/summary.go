package ui

import (
	"fmt"
	"math"
	"strconv"

	"pixel-art/internal/stats"
)

// BasicLines formats basic statistics for display.
func BasicLines(b stats.Basic) []string {
	return []string{
		fmt.Sprintf("Time: %dms", b.GenerationTime),
		fmt.Sprintf("Blocks: %s", strconv.FormatFloat(b.BlockCount, 'f', -1, 64)),
		fmt.Sprintf("Generated: %d times", b.TimesGenerated),
		fmt.Sprintf("Average: %dms", b.AverageGenerationTime),
	}
}

// AdvancedLines formats advanced statistics for display. A nil value yields a
// single placeholder line.
func AdvancedLines(a *stats.Advanced) []string {
	if a == nil {
		return []string{"Advanced: --"}
	}
	return []string{
		fmt.Sprintf("Calculated in: %dms", a.CalculationTime.Milliseconds()),
		fmt.Sprintf("Unique colors: %d", a.UniqueColors),
		fmt.Sprintf("Darkest: %s (%d)", a.Darkest.Hex, a.Darkest.Value),
		fmt.Sprintf("Lightest: %s (%d)", a.Lightest.Hex, a.Lightest.Value),
		fmt.Sprintf("Longest run: %s x%d", a.LongestRun.Hex, a.LongestRun.Value),
		fmt.Sprintf("Average: %s", a.Average.Hex),
	}
}

// Bar is one row of the top colors chart.
type Bar struct {
	Swatch stats.Swatch
	Width  int
	Label  string
}

// Bars scales the top colors against the most frequent one so that it spans
// maxWidth. Every bar is at least one pixel wide.
func Bars(top []stats.Swatch, maxWidth int) []Bar {
	if len(top) == 0 || maxWidth <= 0 {
		return nil
	}
	peak := top[0].Value
	for _, s := range top[1:] {
		peak = max(peak, s.Value)
	}
	bars := make([]Bar, len(top))
	for i, s := range top {
		w := maxWidth
		if peak > 0 {
			w = int(math.Round(float64(s.Value) / float64(peak) * float64(maxWidth)))
		}
		bars[i] = Bar{
			Swatch: s,
			Width:  max(w, 1),
			Label:  fmt.Sprintf("%s - %d times", s.Hex, s.Value),
		}
	}
	return bars
}
