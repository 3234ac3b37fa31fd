// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"image"
	"image/color"

	"github.com/google/uuid"
)

// Layer is one paintable surface: a flat, row-major RGBA buffer of
// width*height*4 bytes with straight (non-premultiplied) alpha.
//
// Layer implements image.Image.
type Layer struct {
	id     uuid.UUID
	width  int
	height int
	data   []uint8
}

// NewLayer creates a fully transparent layer. Negative dimensions are
// treated as zero.
func NewLayer(width, height int) *Layer {
	width, height = max(width, 0), max(height, 0)
	return &Layer{
		id:     uuid.New(),
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// ID returns the layer's unique identifier.
func (l *Layer) ID() uuid.UUID {
	return l.id
}

// Width returns the width of the layer.
func (l *Layer) Width() int {
	return l.width
}

// Height returns the height of the layer.
func (l *Layer) Height() int {
	return l.height
}

// Data returns the raw pixel data (RGBA format).
func (l *Layer) Data() []uint8 {
	return l.data
}

// offset returns the byte index of pixel (x, y), or -1 when out of bounds.
func (l *Layer) offset(x, y int) int {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return -1
	}
	return (y*l.width + x) * 4
}

// SetPixel sets a single pixel. Out-of-bounds coordinates are ignored.
func (l *Layer) SetPixel(x, y int, c color.NRGBA) {
	i := l.offset(x, y)
	if i < 0 {
		return
	}
	l.data[i+0] = c.R
	l.data[i+1] = c.G
	l.data[i+2] = c.B
	l.data[i+3] = c.A
}

// Pixel returns a single pixel. Out-of-bounds coordinates are transparent.
func (l *Layer) Pixel(x, y int) color.NRGBA {
	i := l.offset(x, y)
	if i < 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{R: l.data[i+0], G: l.data[i+1], B: l.data[i+2], A: l.data[i+3]}
}

// Clear fills the entire layer with c.
func (l *Layer) Clear(c color.NRGBA) {
	for i := 0; i < len(l.data); i += 4 {
		l.data[i+0] = c.R
		l.data[i+1] = c.G
		l.data[i+2] = c.B
		l.data[i+3] = c.A
	}
}

// ToImage copies the layer into an image.NRGBA.
func (l *Layer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, l.width, l.height))
	copy(img.Pix, l.data)
	return img
}

// At implements the image.Image interface.
func (l *Layer) At(x, y int) color.Color {
	return l.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (l *Layer) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.width, l.height)
}

// ColorModel implements the image.Image interface.
func (l *Layer) ColorModel() color.Model {
	return color.NRGBAModel
}
