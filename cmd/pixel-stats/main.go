// Command pixel-stats generates pixel art headlessly and reports statistics.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"pixel-art/internal/engine"
)

// Globals are the flags shared by every command.
type Globals struct {
	Verbose bool  `help:"Log every generation" short:"v"`
	Seed    int64 `help:"Random seed, 0 seeds from the clock" default:"0"`
}

type cli struct {
	Globals

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate images and print their statistics"`
	Preview  PreviewCmd  `cmd:"" help:"Render images in the terminal"`
	Sweep    SweepCmd    `cmd:"" help:"Time every palette and algorithm combination"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("pixel-stats"),
		kong.Description("Procedural pixel art generator."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	engine.SetLogger(logger)

	err := kctx.Run(&c.Globals)
	kctx.FatalIfErrorf(err)
}
