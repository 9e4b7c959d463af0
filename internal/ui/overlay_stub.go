//go:build !ebiten

package ui

import "pixel-art/internal/stats"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// SetStats is a no-op in headless builds.
func (o *Overlay) SetStats(*stats.Advanced) {}

// SetPixelSize is a no-op in headless builds.
func (o *Overlay) SetPixelSize(int) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int) {}
