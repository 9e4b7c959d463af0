package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"io"

	"pixel-art/internal/core"

	"golang.org/x/image/draw"
)

// Blend mixes over onto base with the given opacity. Channels are truncated
// after interpolation.
func Blend(base, over core.Color, opacity float64) core.Color {
	if opacity <= 0 {
		return base
	}
	if opacity >= 1 {
		return over
	}
	inv := 1 - opacity
	return core.Color{
		R: uint8(float64(base.R)*inv + float64(over.R)*opacity),
		G: uint8(float64(base.G)*inv + float64(over.G)*opacity),
		B: uint8(float64(base.B)*inv + float64(over.B)*opacity),
	}
}

// ToImage copies raw RGBA pixels into an image.RGBA of the given size.
func ToImage(pix []uint8, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pix)
	return img
}

// Thumbnail scales src into a size*size image with nearest-neighbor sampling,
// which keeps block edges crisp.
func Thumbnail(src image.Image, size int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// DataURL encodes img as a base64 PNG data URL.
func DataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
