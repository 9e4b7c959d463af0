package surface

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"pixel-art/internal/core"
)

// HalfBlock is drawn in every cell: its foreground is the upper pixel and its
// background the lower one.
const HalfBlock = '▀'

// Terminal draws images onto a tcell screen, two pixels per cell stacked
// vertically.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	w, h   int
}

// NewTerminal wraps an initialized screen and sizes the surface to fill it.
func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{screen: screen}
	t.Fit()
	return t
}

// Fit resizes the surface to the current screen size.
func (t *Terminal) Fit() {
	cols, rows := t.screen.Size()
	t.Resize(cols, rows*2)
}

// Size reports the surface dimensions in pixels.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w, t.h
}

// Resize changes the pixel dimensions and clears the screen.
func (t *Terminal) Resize(w, h int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.w, t.h = max(w, 0), max(h, 0)
	t.screen.Clear()
}

// Blit draws pix and shows the screen. Pixels beyond the screen are clipped.
func (t *Terminal) Blit(pix []uint8) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(pix) != t.w*t.h*4 {
		return fmt.Errorf("%w: got %d bytes for %dx%d", core.ErrBufferSizeMismatch, len(pix), t.w, t.h)
	}
	rgb := func(x, y int) tcell.Color {
		i := (y*t.w + x) * 4
		return tcell.NewRGBColor(int32(pix[i]), int32(pix[i+1]), int32(pix[i+2]))
	}
	for y := 0; y < t.h; y += 2 {
		for x := 0; x < t.w; x++ {
			style := tcell.StyleDefault.Foreground(rgb(x, y))
			if y+1 < t.h {
				style = style.Background(rgb(x, y+1))
			}
			t.screen.SetContent(x, y/2, HalfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Screen returns the underlying screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }
