package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"pixel-art/internal/engine"
	"pixel-art/internal/render"
	"pixel-art/internal/surface"
	"pixel-art/internal/ui"
)

// GenerateCmd generates images into memory and prints their statistics.
type GenerateCmd struct {
	ImageFlags

	Count     int  `help:"Number of images to generate" default:"1" short:"n"`
	Thumbnail int  `help:"Print a PNG data URL of a size*size thumbnail of the last image, 0 to skip" default:"0"`
	Bars      bool `help:"Print the top colors as bars" default:"true" negatable:""`
}

// Run executes the generate command.
func (c *GenerateCmd) Run(g *Globals) error {
	return c.run(context.Background(), os.Stdout, g.Seed)
}

func (c *GenerateCmd) run(ctx context.Context, out io.Writer, seed int64) error {
	mem := surface.NewMemory(0, 0)
	eng, err := engine.New(mem, c.config(seed))
	if err != nil {
		return err
	}

	for i := 0; i < max(c.Count, 1); i++ {
		if i > 0 && c.Randomize {
			eng.RandomizeSettings()
		}
		res, err := eng.Generate()
		if err != nil {
			return fmt.Errorf("generation %d: %w", i+1, err)
		}
		slog.Debug("generated", "palette", eng.Palette(), "algorithm", eng.Algorithm(), "pixel_size", eng.PixelSize())

		fmt.Fprintf(out, "%s / %s, %dx%d, pixel size %d\n", eng.Palette(), eng.Algorithm(), eng.Width(), eng.Height(), eng.PixelSize())
		writeLines(out, ui.BasicLines(res.Basic))

		adv, err := res.Advanced.Wait(ctx)
		switch {
		case errors.Is(err, engine.ErrAdvancedDisabled):
		case err != nil:
			return err
		default:
			writeLines(out, ui.AdvancedLines(adv))
			if c.Bars {
				for _, bar := range ui.Bars(adv.TopColors, 40) {
					fmt.Fprintf(out, "  %-40s %s\n", strings.Repeat("#", bar.Width), bar.Label)
				}
			}
		}
		fmt.Fprintln(out)
	}

	if c.Thumbnail > 0 {
		url, err := render.DataURL(mem.Thumbnail(c.Thumbnail))
		if err != nil {
			return fmt.Errorf("thumbnail: %w", err)
		}
		fmt.Fprintln(out, url)
	}
	return nil
}

func writeLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
}
