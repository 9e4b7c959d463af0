// Package engine drives image generation: it owns the current settings, runs
// the selected palette and algorithm, hands the result to a display surface
// and reports statistics.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pixel-art/internal/algorithm"
	"pixel-art/internal/core"
	"pixel-art/internal/palette"
	"pixel-art/internal/stats"
	prng "pixel-art/pkg/core"
)

var (
	paletteTable   = byName(palette.All())
	algorithmTable = byName(algorithm.All())
)

// byName indexes ids by their display names.
func byName[T fmt.Stringer](ids []T) map[string]T {
	m := make(map[string]T, len(ids))
	for _, id := range ids {
		m[id.String()] = id
	}
	return m
}

// ErrAdvancedDisabled resolves the advanced statistics of a generation made
// while advanced statistics were turned off.
var ErrAdvancedDisabled = errors.New("advanced statistics disabled")

// Surface is the display target of generated images.
type Surface interface {
	// Size reports the current pixel dimensions.
	Size() (w, h int)
	// Resize changes the pixel dimensions.
	Resize(w, h int)
	// Blit replaces the displayed image. pix must hold exactly w*h*4 bytes,
	// otherwise core.ErrBufferSizeMismatch is returned.
	Blit(pix []uint8) error
}

// Result is returned by Generate.
type Result struct {
	Basic    stats.Basic
	Advanced *AdvancedHandle
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithRNG replaces the random source.
func WithRNG(r *prng.RNG) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithDate sets the date the Of the Day palette is derived from.
func WithDate(t time.Time) Option {
	return func(e *Engine) { e.daily = palette.NewDailyRange(t) }
}

// Engine generates images onto a Surface. Generate and the setters must be
// called from one goroutine; AdvancedStats may be called from any.
type Engine struct {
	surface Surface
	cfg     Config
	rng     *prng.RNG
	daily   palette.DailyRange
	history stats.History

	mu       sync.Mutex
	advanced *stats.Advanced
}

// New constructs an engine drawing onto surface.
func New(surface Surface, cfg Config, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, errors.New("engine: nil surface")
	}
	if !cfg.Palette.Valid() {
		return nil, fmt.Errorf("engine: %w: palette %d", core.ErrInvalidSelection, cfg.Palette)
	}
	if !cfg.Algorithm.Valid() {
		return nil, fmt.Errorf("engine: %w: algorithm %d", core.ErrInvalidSelection, cfg.Algorithm)
	}
	cfg = cfg.normalized()

	e := &Engine{
		surface: surface,
		cfg:     cfg,
		daily:   palette.NewDailyRange(time.Now()),
	}
	if cfg.Seed != 0 {
		e.rng = prng.NewRNG(cfg.Seed)
	} else {
		e.rng = prng.NewRandomRNG()
	}
	for _, opt := range opts {
		opt(e)
	}

	if cfg.Width > 0 && cfg.Height > 0 {
		surface.Resize(cfg.Width, cfg.Height)
	}
	e.syncSize()
	if cfg.Randomize {
		e.RandomizeSettings()
	}
	return e, nil
}

// syncSize reads the surface dimensions, clamping both to at least 1 and
// resizing the surface when the clamp changed them.
func (e *Engine) syncSize() {
	w, h := e.surface.Size()
	cw, ch := max(w, 1), max(h, 1)
	if cw != w || ch != h {
		e.surface.Resize(cw, ch)
	}
	e.cfg.Width, e.cfg.Height = cw, ch
}

// Generate synthesizes one image with the current settings, blits it and
// returns its statistics. Advanced statistics are computed in the background
// and delivered through Result.Advanced.
func (e *Engine) Generate() (Result, error) {
	e.syncSize()
	cfg := e.cfg

	start := time.Now()
	color := cfg.Palette.Bind(palette.Context{
		RNG:    e.rng,
		Params: cfg.Palettes,
		Daily:  e.daily,
	})
	buf := cfg.Algorithm.Run(algorithm.Context{
		Width:     cfg.Width,
		Height:    cfg.Height,
		PixelSize: cfg.PixelSize,
		Color:     color,
		RNG:       e.rng,
		Params:    cfg.Algorithms,
	})
	if err := e.surface.Blit(buf.Pix); err != nil {
		return Result{}, fmt.Errorf("engine: blit %dx%d: %w", cfg.Width, cfg.Height, err)
	}
	ms := int(time.Since(start).Milliseconds())

	basic := e.history.Record(ms)
	basic.BlockCount = stats.BlockCount(cfg.Width, cfg.Height, cfg.PixelSize)
	Logger().Debug("generated",
		"palette", cfg.Palette.String(),
		"algorithm", cfg.Algorithm.String(),
		"w", cfg.Width, "h", cfg.Height, "pixel_size", cfg.PixelSize,
		"ms", ms, "count", basic.TimesGenerated)

	return Result{Basic: basic, Advanced: e.scheduleAdvanced(buf, cfg)}, nil
}

// scheduleAdvanced takes ownership of buf and computes its advanced
// statistics on a new goroutine.
func (e *Engine) scheduleAdvanced(buf *core.Buffer, cfg Config) *AdvancedHandle {
	h := newHandle()
	if !cfg.AdvancedStats {
		h.resolve(nil, ErrAdvancedDisabled)
		return h
	}
	go func() {
		adv, err := stats.ComputeAdvanced(buf, cfg.PixelSize, cfg.TopColors)
		if err != nil {
			err = fmt.Errorf("engine: advanced stats: %w", err)
			Logger().Warn("advanced stats failed", "err", err)
			h.resolve(nil, err)
			return
		}
		e.mu.Lock()
		e.advanced = adv
		e.mu.Unlock()
		h.resolve(adv, nil)
	}()
	return h
}

// RandomizeSettings picks a random palette, algorithm and pixel size.
func (e *Engine) RandomizeSettings() {
	e.cfg.Palette = paletteTable[prng.RandomKey(e.rng, paletteTable)]
	e.cfg.Algorithm = algorithmTable[prng.RandomKey(e.rng, algorithmTable)]
	e.cfg.PixelSize = e.rng.IntBetween(e.cfg.RandomPixelMin, e.cfg.RandomPixelMax)
	Logger().Debug("randomized settings",
		"palette", e.cfg.Palette.String(),
		"algorithm", e.cfg.Algorithm.String(),
		"pixel_size", e.cfg.PixelSize)
}

// SetWidth sets the image width, clamped to at least 1, and resizes the
// surface.
func (e *Engine) SetWidth(n int) {
	e.cfg.Width = max(n, 1)
	e.surface.Resize(e.cfg.Width, e.cfg.Height)
}

// SetHeight sets the image height, clamped to at least 1, and resizes the
// surface.
func (e *Engine) SetHeight(n int) {
	e.cfg.Height = max(n, 1)
	e.surface.Resize(e.cfg.Width, e.cfg.Height)
}

// SetPixelSize sets the block size, clamped to at least 1.
func (e *Engine) SetPixelSize(n int) {
	e.cfg.PixelSize = max(n, 1)
}

// SetPalette selects a palette by display name. Unknown names leave the
// current palette in place.
func (e *Engine) SetPalette(name string) error {
	id, err := palette.Lookup(name)
	if err != nil {
		return err
	}
	e.cfg.Palette = id
	return nil
}

// SetAlgorithm selects an algorithm by display name. Unknown names leave the
// current algorithm in place.
func (e *Engine) SetAlgorithm(name string) error {
	id, err := algorithm.Lookup(name)
	if err != nil {
		return err
	}
	e.cfg.Algorithm = id
	return nil
}

// SetAdvancedStatsEnabled toggles background statistics for subsequent
// generations.
func (e *Engine) SetAdvancedStatsEnabled(on bool) { e.cfg.AdvancedStats = on }

// Width returns the image width in pixels.
func (e *Engine) Width() int { return e.cfg.Width }

// Height returns the image height in pixels.
func (e *Engine) Height() int { return e.cfg.Height }

// PixelSize returns the side of a square block.
func (e *Engine) PixelSize() int { return e.cfg.PixelSize }

// Palette returns the display name of the selected palette.
func (e *Engine) Palette() string { return e.cfg.Palette.String() }

// Algorithm returns the display name of the selected algorithm.
func (e *Engine) Algorithm() string { return e.cfg.Algorithm.String() }

// AdvancedStatsEnabled reports whether generations compute advanced statistics.
func (e *Engine) AdvancedStatsEnabled() bool { return e.cfg.AdvancedStats }

// TimesGenerated counts the successful generations of this engine.
func (e *Engine) TimesGenerated() int { return e.history.Count() }

// Daily returns the channel ranges used by the Of the Day palette.
func (e *Engine) Daily() palette.DailyRange { return e.daily }

// Palettes lists the palette names in display order.
func (e *Engine) Palettes() []string { return palette.Names() }

// Algorithms lists the algorithm names in display order.
func (e *Engine) Algorithms() []string { return algorithm.Names() }

// AdvancedStats returns the most recently completed advanced statistics, or
// nil if none have completed yet.
func (e *Engine) AdvancedStats() *stats.Advanced {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.advanced
}
