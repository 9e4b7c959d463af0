package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"pixel-art/internal/algorithm"
	"pixel-art/internal/engine"
	"pixel-art/internal/palette"
	"pixel-art/internal/surface"
)

// SweepCmd times every palette and algorithm combination.
type SweepCmd struct {
	Width     int  `help:"Image width in pixels" default:"512" short:"W"`
	Height    int  `help:"Image height in pixels" default:"512" short:"H"`
	PixelSize int  `help:"Block size in pixels" default:"2" short:"p"`
	Runs      int  `help:"Generations per combination" default:"5"`
	Workers   int  `help:"Concurrent combinations, 0 for GOMAXPROCS" default:"0"`
	Stats     bool `help:"Also compute advanced statistics" default:"true" negatable:""`
}

type sweepResult struct {
	Palette   palette.ID
	Algorithm algorithm.ID
	Elapsed   time.Duration
	AverageMS int
	Unique    int
}

// Run executes the sweep and prints the results slowest first.
func (c *SweepCmd) Run(g *Globals) error {
	start := time.Now()
	results, err := c.sweep(context.Background(), g.Seed)
	if err != nil {
		return err
	}
	slog.Info("sweep finished", "combinations", len(results), "elapsed", time.Since(start))
	return writeSweep(os.Stdout, results)
}

// sweep runs every palette and algorithm combination on its own engine and
// surface, slowest first.
func (c *SweepCmd) sweep(ctx context.Context, seed int64) ([]sweepResult, error) {
	workers := c.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	palettes, algorithms := palette.All(), algorithm.All()
	results := make([]sweepResult, len(palettes)*len(algorithms))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range palettes {
		for j, a := range algorithms {
			slot := &results[i*len(algorithms)+j]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := c.one(ctx, p, a, seed)
				if err != nil {
					return fmt.Errorf("%s / %s: %w", p, a, err)
				}
				*slot = r
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b sweepResult) int {
		return cmp.Compare(b.Elapsed, a.Elapsed)
	})
	return results, nil
}

func (c *SweepCmd) one(ctx context.Context, p palette.ID, a algorithm.ID, seed int64) (sweepResult, error) {
	cfg := engine.DefaultConfig()
	cfg.Width = max(c.Width, 1)
	cfg.Height = max(c.Height, 1)
	cfg.PixelSize = c.PixelSize
	cfg.Palette = p
	cfg.Algorithm = a
	cfg.AdvancedStats = c.Stats
	if seed != 0 {
		cfg.Seed = seed + int64(p)*int64(len(algorithm.All())) + int64(a)
	}
	eng, err := engine.New(surface.NewMemory(0, 0), cfg)
	if err != nil {
		return sweepResult{}, err
	}

	r := sweepResult{Palette: p, Algorithm: a}
	start := time.Now()
	for i := 0; i < max(c.Runs, 1); i++ {
		res, err := eng.Generate()
		if err != nil {
			return sweepResult{}, err
		}
		r.AverageMS = res.Basic.AverageGenerationTime
		if !c.Stats {
			continue
		}
		adv, err := res.Advanced.Wait(ctx)
		if err != nil {
			return sweepResult{}, err
		}
		r.Unique = adv.UniqueColors
	}
	r.Elapsed = time.Since(start)
	return r, nil
}

func writeSweep(out io.Writer, results []sweepResult) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PALETTE\tALGORITHM\tAVG MS\tTOTAL\tUNIQUE")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n", r.Palette, r.Algorithm, r.AverageMS, r.Elapsed.Round(time.Microsecond), r.Unique)
	}
	return tw.Flush()
}
