// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/brushy/internal/blend"
)

// Pixel is one weighted pixel of a stamp, offset from the stamp origin.
type Pixel struct {
	X, Y  int
	Color color.NRGBA
}

// Stamp is one dab of a brush: a sparse, immutable set of pixels around
// the origin. Pixels with zero alpha are never stored.
type Stamp struct {
	Pixels []Pixel
}

// Len returns the number of pixels in the stamp.
func (s *Stamp) Len() int {
	return len(s.Pixels)
}

// Bounds returns the smallest rectangle of offsets containing every pixel.
// An empty stamp has empty bounds.
func (s *Stamp) Bounds() image.Rectangle {
	if len(s.Pixels) == 0 {
		return image.Rectangle{}
	}
	r := image.Rect(s.Pixels[0].X, s.Pixels[0].Y, s.Pixels[0].X+1, s.Pixels[0].Y+1)
	for _, p := range s.Pixels[1:] {
		r = r.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
	return r
}

// SoftCircleStamp generates a soft circle dab.
//
// Offsets (x, y) in [-ceil(r), ceil(r)]^2 with distance d <= r are kept.
// With t = d/r, pixels with t < hardness are fully opaque; beyond that the
// alpha follows 1 - smoothstep((t-h)/(1-h)). The final alpha byte is
// round(fraction * opacity * 255); zero-alpha pixels are dropped.
//
// A radius outside (0, MaxRadius] yields an empty stamp.
func SoftCircleStamp(radius, hardness, opacity float64, c RGB) *Stamp {
	if !finite(radius) || radius <= 0 || radius > MaxRadius {
		return &Stamp{}
	}

	ri := int(math.Ceil(radius))
	side := 2*ri + 1
	pixels := make([]Pixel, 0, side*side)

	for y := -ri; y <= ri; y++ {
		for x := -ri; x <= ri; x++ {
			d := math.Sqrt(float64(x*x + y*y))
			if d > radius {
				continue
			}
			a := blend.Quantize(softCircleFalloff(d/radius, hardness) * opacity)
			if a == 0 {
				continue
			}
			pixels = append(pixels, Pixel{X: x, Y: y, Color: c.NRGBA(a)})
		}
	}

	return &Stamp{Pixels: pixels}
}

// softCircleFalloff returns the alpha fraction at normalized distance t.
func softCircleFalloff(t, hardness float64) float64 {
	if t < hardness || hardness >= 1 {
		return 1
	}
	u := (t - hardness) / (1 - hardness)
	return max(0, 1-smoothstep(u))
}

// smoothstep is the cubic Hermite ramp u²(3-2u).
func smoothstep(u float64) float64 {
	return u * u * (3 - 2*u)
}
