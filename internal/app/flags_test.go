package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"pixel-art/internal/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("pixel-art", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-w", "64", "-h", "0", "-pixel", "3",
		"-palette", "Black & White", "-algorithm", "Cascade",
		"-randomize=false", "-auto", "-interval", "2s", "-seed", "9",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Auto || cfg.Interval != 2*time.Second {
		t.Fatalf("auto = %v every %v", cfg.Auto, cfg.Interval)
	}

	ec, err := cfg.EngineConfig()
	if err != nil {
		t.Fatal(err)
	}
	if ec.Width != 64 || ec.Height != 1 || ec.PixelSize != 3 {
		t.Fatalf("engine size %dx%d/%d", ec.Width, ec.Height, ec.PixelSize)
	}
	if ec.Palette.String() != "Black & White" || ec.Algorithm.String() != "Cascade" {
		t.Fatalf("selection %s / %s", ec.Palette, ec.Algorithm)
	}
	if ec.Randomize || ec.Seed != 9 || !ec.AdvancedStats {
		t.Fatalf("engine config = %+v", ec)
	}
}

func TestConfigRejectsUnknownNames(t *testing.T) {
	cfg := NewConfig()
	cfg.Palette = "Sepia"
	if _, err := cfg.EngineConfig(); !errors.Is(err, core.ErrInvalidSelection) {
		t.Fatalf("EngineConfig() error = %v", err)
	}
	cfg = NewConfig()
	cfg.Algorithm = "Voronoi"
	if _, err := cfg.EngineConfig(); !errors.Is(err, core.ErrInvalidSelection) {
		t.Fatalf("EngineConfig() error = %v", err)
	}
}
