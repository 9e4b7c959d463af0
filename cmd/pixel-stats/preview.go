package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"pixel-art/internal/engine"
	"pixel-art/internal/surface"
)

// PreviewCmd renders images into the terminal with half-block cells.
type PreviewCmd struct {
	ImageFlags
}

// Run opens the terminal and runs the preview loop.
func (c *PreviewCmd) Run(g *Globals) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	return c.loop(screen, g.Seed)
}

// loop draws into the whole screen and regenerates on key presses until the
// user quits.
func (c *PreviewCmd) loop(screen tcell.Screen, seed int64) error {
	term := surface.NewTerminal(screen)
	cfg := c.config(seed)
	cfg.Width, cfg.Height = 0, 0
	cfg.AdvancedStats = false
	eng, err := engine.New(term, cfg)
	if err != nil {
		return err
	}

	generate := func() error {
		_, err := eng.Generate()
		if err != nil {
			return err
		}
		slog.Debug("preview", "palette", eng.Palette(), "algorithm", eng.Algorithm(), "pixel_size", eng.PixelSize())
		return nil
	}
	if err := generate(); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			term.Fit()
			if err := generate(); err != nil {
				return err
			}
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'r':
				eng.RandomizeSettings()
				if err := generate(); err != nil {
					return err
				}
			case ev.Rune() == ' ', ev.Rune() == 'g', ev.Key() == tcell.KeyEnter:
				if err := generate(); err != nil {
					return err
				}
			}
		}
	}
}
