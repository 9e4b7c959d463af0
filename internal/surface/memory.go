// Package surface provides display targets for generated images.
package surface

import (
	"fmt"
	"image"
	"io"
	"sync"

	"pixel-art/internal/core"
	"pixel-art/internal/render"
)

// Memory is an in-memory surface backed by an image.RGBA.
type Memory struct {
	mu  sync.RWMutex
	img *image.RGBA
}

// NewMemory returns a w*h surface. Negative dimensions are treated as 0.
func NewMemory(w, h int) *Memory {
	m := &Memory{}
	m.Resize(w, h)
	return m
}

// Size reports the surface dimensions.
func (m *Memory) Size() (int, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b := m.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the surface. The previous contents are dropped.
func (m *Memory) Resize(w, h int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// Blit copies pix into the surface.
func (m *Memory) Blit(pix []uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(pix) != len(m.img.Pix) {
		b := m.img.Bounds()
		return fmt.Errorf("%w: got %d bytes for %dx%d", core.ErrBufferSizeMismatch, len(pix), b.Dx(), b.Dy())
	}
	copy(m.img.Pix, pix)
	return nil
}

// Image returns a copy of the current contents.
func (m *Memory) Image() *image.RGBA {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b := m.img.Bounds()
	return render.ToImage(m.img.Pix, b.Dx(), b.Dy())
}

// Bytes returns a copy of the raw RGBA pixels.
func (m *Memory) Bytes() []uint8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]uint8(nil), m.img.Pix...)
}

// EncodePNG writes the current contents as PNG.
func (m *Memory) EncodePNG(w io.Writer) error {
	return render.EncodePNG(w, m.Image())
}

// DataURL returns the current contents as a base64 PNG data URL.
func (m *Memory) DataURL() (string, error) {
	return render.DataURL(m.Image())
}

// Thumbnail scales the current contents to a size*size square.
func (m *Memory) Thumbnail(size int) *image.RGBA {
	return render.Thumbnail(m.Image(), size)
}
