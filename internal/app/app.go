//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"

	"pixel-art/internal/core"
	"pixel-art/internal/engine"
	"pixel-art/internal/stats"
	"pixel-art/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 320

// imageSurface is an engine.Surface backed by an offscreen ebiten image.
type imageSurface struct {
	img  *ebiten.Image
	w, h int
}

func newImageSurface(w, h int) *imageSurface {
	s := &imageSurface{}
	s.Resize(w, h)
	return s
}

func (s *imageSurface) Size() (int, int) { return s.w, s.h }

func (s *imageSurface) Resize(w, h int) {
	if s.img != nil && w == s.w && h == s.h {
		return
	}
	if s.img != nil {
		s.img.Dispose()
	}
	s.w, s.h = w, h
	s.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

func (s *imageSurface) Blit(pix []uint8) error {
	if len(pix) != s.w*s.h*4 {
		return fmt.Errorf("%w: got %d bytes for %dx%d", core.ErrBufferSizeMismatch, len(pix), s.w, s.h)
	}
	s.img.WritePixels(pix)
	return nil
}

// Game adapts the generation engine to the ebiten.Game interface.
type Game struct {
	engine   *engine.Engine
	surface  *imageSurface
	hud      *ui.HUD
	overlay  *ui.Overlay
	interval *core.Interval

	scale   int
	auto    bool
	basic   stats.Basic
	pending *engine.AdvancedHandle
	status  string
}

// New constructs a Game from cfg and draws the first image.
func New(cfg *Config) (*Game, error) {
	ec, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}
	surface := newImageSurface(ec.Width, ec.Height)
	eng, err := engine.New(surface, ec)
	if err != nil {
		return nil, err
	}
	g := &Game{
		engine:   eng,
		surface:  surface,
		hud:      ui.NewHUD(eng, "Pixel Art", hudWidth),
		overlay:  ui.NewOverlay(max(cfg.Scale, 1)),
		interval: core.NewInterval(cfg.Interval),
		scale:    max(cfg.Scale, 1),
		auto:     cfg.Auto,
	}
	if err := g.generate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine { return g.engine }

func (g *Game) generate() error {
	res, err := g.engine.Generate()
	if err != nil {
		g.status = err.Error()
		return err
	}
	g.basic = res.Basic
	g.pending = res.Advanced
	g.status = ""
	g.overlay.SetPixelSize(g.engine.PixelSize())
	g.interval.Reset()
	g.refreshLines()
	return nil
}

func (g *Game) randomize() error {
	g.engine.RandomizeSettings()
	return g.generate()
}

// pollAdvanced collects finished background statistics without blocking.
func (g *Game) pollAdvanced() {
	if g.pending == nil {
		return
	}
	select {
	case <-g.pending.Done():
	default:
		return
	}
	adv, err := g.pending.Wait(context.Background())
	g.pending = nil
	switch {
	case errors.Is(err, engine.ErrAdvancedDisabled):
		g.overlay.SetStats(nil)
	case err != nil:
		g.status = err.Error()
	default:
		g.overlay.SetStats(adv)
	}
	g.refreshLines()
}

func (g *Game) refreshLines() {
	lines := ui.BasicLines(g.basic)
	lines = append(lines, "")
	if g.engine.AdvancedStatsEnabled() {
		lines = append(lines, ui.AdvancedLines(g.engine.AdvancedStats())...)
	} else {
		lines = append(lines, "Advanced: off")
	}
	auto := "off"
	if g.auto {
		auto = g.interval.Period().String()
	}
	lines = append(lines, "", "Auto: "+auto)
	if g.status != "" {
		lines = append(lines, g.status)
	}
	lines = append(lines, "", "G draw  R randomize  A auto", "S stats  1-3 overlays  Q quit")
	g.hud.SetLines(lines)
}

// Update handles input, automatic regeneration and background statistics.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyG),
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		err = g.generate()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		err = g.randomize()
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.auto = !g.auto
		g.interval.Reset()
		g.refreshLines()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.engine.SetAdvancedStatsEnabled(!g.engine.AdvancedStatsEnabled())
		g.refreshLines()
	}
	if err != nil {
		engine.Logger().Error("generate failed", "err", err)
	}

	g.overlay.Update()
	if g.hud.Update(g.surface.w * g.scale) {
		if err := g.generate(); err != nil {
			engine.Logger().Error("generate failed", "err", err)
		}
	}
	if g.auto && g.interval.Due() {
		if err := g.randomize(); err != nil {
			engine.Logger().Error("generate failed", "err", err)
		}
	}
	g.pollAdvanced()
	return nil
}

// Draw renders the current image, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.surface.img, op)
	g.overlay.Draw(screen, g.surface.w, g.surface.h)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.surface.w*g.scale, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.w*g.scale + hudWidth, max(g.surface.h*g.scale, minHeight)
}

const minHeight = 720
