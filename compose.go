// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"image"

	"github.com/gogpu/brushy/internal/blend"
)

// BlendMode selects how a stamp is applied to a layer.
type BlendMode uint8

const (
	// BlendPaint accumulates the stamp color and alpha onto the layer:
	// every channel becomes D + S*(1-D).
	BlendPaint BlendMode = iota

	// BlendErase lowers layer alpha by the stamp alpha times the brush
	// opacity. Color channels are left untouched.
	BlendErase
)

// String returns the mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendPaint:
		return "paint"
	case BlendErase:
		return "erase"
	default:
		return "unknown"
	}
}

// BlendStamp applies one stamp to dst with its origin at the pixel at.
//
// Stamp pixels falling outside the layer are clipped. In BlendErase mode the
// erase strength of a pixel is its alpha fraction times opacity; opacity is
// ignored when painting, since it is already baked into the stamp alpha.
func BlendStamp(dst *Layer, s *Stamp, at image.Point, mode BlendMode, opacity float64) {
	for _, p := range s.Pixels {
		i := dst.offset(at.X+p.X, at.Y+p.Y)
		if i < 0 {
			continue
		}
		px := dst.data[i : i+4]
		switch mode {
		case BlendErase:
			blend.Erode(px, blend.Unit(p.Color.A)*opacity)
		default:
			blend.SourceOver(px, p.Color.R, p.Color.G, p.Color.B, p.Color.A)
		}
	}
}

// MergeLayers clears dst to transparent black and composites layers over it
// in order, bottom first. dst is a flat RGBA buffer; layers whose size does
// not match only contribute their common prefix.
func MergeLayers(dst []byte, layers []*Layer) {
	blend.Clear(dst)
	for _, l := range layers {
		blend.Merge(dst, l.data)
	}
}
