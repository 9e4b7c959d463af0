//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"pixel-art/internal/core"
	"pixel-art/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional statistics visuals on top of the generated image.
type Overlay struct {
	scale        int
	showBars     bool
	showGrid     bool
	showSwatches bool

	advanced  *stats.Advanced
	pixelSize int

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance. The top colors chart starts
// visible.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showBars: true, pixelSize: 1}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetStats replaces the statistics being visualized. nil hides the charts.
func (o *Overlay) SetStats(adv *stats.Advanced) { o.advanced = adv }

// SetPixelSize sets the block size used by the grid.
func (o *Overlay) SetPixelSize(p int) { o.pixelSize = max(p, 1) }

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBars = !o.showBars
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSwatches = !o.showSwatches
	}
}

// Draw renders the overlay over an image of size w*h pixels.
func (o *Overlay) Draw(screen *ebiten.Image, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showGrid {
		o.drawGrid(screen, w, h, scale)
	}
	if o.advanced == nil {
		return
	}
	if o.showSwatches {
		o.drawSwatches(screen, w*scale)
	}
	if o.showBars {
		o.drawBars(screen, w*scale, h*scale)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, w, h, scale int) {
	span := o.pixelSize * scale
	if span < 4 {
		return
	}
	line := color.RGBA{R: 0, G: 0, B: 0, A: 70}
	for x := span; x < w*scale; x += span {
		o.drawLine(screen, float64(x), 0, float64(x), float64(h*scale), 1, line)
	}
	for y := span; y < h*scale; y += span {
		o.drawLine(screen, 0, float64(y), float64(w*scale), float64(y), 1, line)
	}
}

func (o *Overlay) drawBars(screen *ebiten.Image, width, height int) {
	const (
		margin   = 8
		barH     = 16
		barGap   = 4
		maxRatio = 0.6
	)
	bars := Bars(o.advanced.TopColors, int(float64(width)*maxRatio))
	if len(bars) == 0 {
		return
	}
	top := height - margin - len(bars)*(barH+barGap)
	panelW := float64(width) * maxRatio
	o.drawRect(screen, margin/2, float64(top-margin/2), panelW+margin, float64(len(bars)*(barH+barGap)+margin), color.RGBA{R: 16, G: 16, B: 20, A: 170})

	face := basicfont.Face7x13
	for i, bar := range bars {
		y := top + i*(barH+barGap)
		c := toRGBA(bar.Swatch.Color, 255)
		o.drawRect(screen, margin, float64(y), float64(bar.Width), barH, c)
		text.Draw(screen, bar.Label, face, margin+4, y+12, labelColor(bar.Swatch.Color))
	}
}

func (o *Overlay) drawSwatches(screen *ebiten.Image, width int) {
	const (
		size   = 28
		margin = 8
	)
	swatches := []stats.Swatch{o.advanced.Darkest, o.advanced.Average, o.advanced.Lightest}
	x := float64(width - margin - len(swatches)*(size+margin))
	for _, s := range swatches {
		o.drawRect(screen, x-1, margin-1, size+2, size+2, color.RGBA{R: 230, G: 230, B: 240, A: 255})
		o.drawRect(screen, x, margin, size, size, toRGBA(s.Color, 255))
		x += size + margin
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func toRGBA(c core.Color, a uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// labelColor picks black or white text for legibility over c.
func labelColor(c core.Color) color.RGBA {
	if c.Sum() > 384 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
