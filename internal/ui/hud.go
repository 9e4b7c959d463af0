//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding  = 12
	rowHeight     = 36
	buttonSize    = 24
	buttonGap     = 6
	titleBaseline = 18
	labelBaseline = 24
	rowsTop       = panelPadding + titleBaseline + 14
	linesSpacing  = 20
	lineHeight    = 16
)

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	statsColor    = color.RGBA{R: 190, G: 200, B: 190, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the settings panel and statistics to the right of the image.
type HUD struct {
	settings Settings
	title    string
	width    int
	rows     []setting
	lines    []string
	offsetX  int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD builds a panel of the given width editing s.
func NewHUD(s Settings, title string, width int) *HUD {
	h := &HUD{settings: s, title: title, width: max(width, 0)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if s != nil {
		h.rows = newSettings(s)
	}
	return h
}

// SetLines replaces the statistics shown under the settings.
func (h *HUD) SetLines(lines []string) {
	if h == nil {
		return
	}
	h.lines = lines
}

// Update reloads the settings and handles clicks on the +/- buttons. It
// reports whether a setting changed.
func (h *HUD) Update(offsetX int) bool {
	if h == nil || h.settings == nil {
		return false
	}
	h.offsetX = offsetX
	syncSettings(h.rows, h.settings.Parameters())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.rows {
		minus, plus := h.buttons(i)
		var dir int
		switch {
		case p.In(minus):
			dir = -1
		case p.In(plus):
			dir = 1
		default:
			continue
		}
		if !h.rows[i].adjust(h.settings, dir) {
			return false
		}
		syncSettings(h.rows, h.settings.Parameters())
		return true
	}
	return false
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+titleBaseline, titleColor)
	for i, row := range h.rows {
		minus, plus := h.buttons(i)
		y := rowsTop + i*rowHeight + labelBaseline
		text.Draw(h.panel, row.Label, face, panelPadding, y, textColor)
		valueColor := textColor
		if !row.known {
			valueColor = mutedColor
		}
		w := text.BoundString(face, row.text).Dx()
		text.Draw(h.panel, row.text, face, minus.Min.X-buttonGap-w, y, valueColor)
		_, canDec := row.next(-1)
		_, canInc := row.next(1)
		h.drawButton(minus, "-", canDec)
		h.drawButton(plus, "+", canInc)
	}

	y := rowsTop + len(h.rows)*rowHeight + linesSpacing
	for _, line := range h.lines {
		if line == "" {
			y += lineHeight / 2
			continue
		}
		text.Draw(h.panel, line, face, panelPadding, y, statsColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// buttons returns the minus and plus button rectangles of row i in panel
// coordinates.
func (h *HUD) buttons(i int) (image.Rectangle, image.Rectangle) {
	y := rowsTop + i*rowHeight + (rowHeight-buttonSize)/2
	plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
	minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	return minus, plus
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, textColor
	if !enabled {
		bg, fg = disabledColor, mutedColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
