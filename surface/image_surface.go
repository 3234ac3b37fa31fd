// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageSurface is a CPU presenter that renders the frame into an *image.RGBA.
//
// The frame is scaled to fit the surface while keeping its aspect ratio and
// centered; the remaining bars are filled with the background color.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	// ... merge layers into s.Frame() ...
//	_ = s.Present()
//	img := s.Snapshot()
type ImageSurface struct {
	frame  *image.NRGBA
	target *image.RGBA

	scaler     draw.Interpolator
	background color.Color

	presented int
	closed    bool
}

// ImageOption configures an ImageSurface.
type ImageOption func(*ImageSurface)

// WithInterpolator selects the scaler used when the surface size differs
// from the frame size. The default is draw.NearestNeighbor, which keeps
// brush pixels crisp.
func WithInterpolator(s draw.Interpolator) ImageOption {
	return func(is *ImageSurface) {
		if s != nil {
			is.scaler = s
		}
	}
}

// WithBackground sets the color of the letterbox bars.
// The default is fully transparent.
func WithBackground(c color.Color) ImageOption {
	return func(is *ImageSurface) {
		if c != nil {
			is.background = c
		}
	}
}

// NewImageSurface creates a presenter whose frame and initial output surface
// are both width x height. Non-positive dimensions are raised to 1.
func NewImageSurface(width, height int, opts ...ImageOption) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	s := &ImageSurface{
		frame:      image.NewNRGBA(image.Rect(0, 0, width, height)),
		target:     image.NewRGBA(image.Rect(0, 0, width, height)),
		scaler:     draw.NearestNeighbor,
		background: color.Transparent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FrameSize returns the frame dimensions.
func (s *ImageSurface) FrameSize() (width, height int) {
	b := s.frame.Bounds()
	return b.Dx(), b.Dy()
}

// Frame returns the frame pixels (straight-alpha RGBA).
func (s *ImageSurface) Frame() []byte {
	return s.frame.Pix
}

// Size returns the current output surface dimensions.
func (s *ImageSurface) Size() (width, height int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the output surface. Its content is lost until the next
// Present.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if w, h := s.Size(); w == width && h == height {
		return nil
	}
	s.target = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Present scales the frame onto the output surface.
func (s *ImageSurface) Present() error {
	if s.closed {
		return ErrClosed
	}

	dst := s.target.Bounds()
	fit := FitRect(s.frame.Bounds(), dst)
	if fit != dst {
		draw.Draw(s.target, dst, image.NewUniform(s.background), image.Point{}, draw.Src)
	}
	s.scaler.Scale(s.target, fit, s.frame, s.frame.Bounds(), draw.Src, nil)
	s.presented++
	return nil
}

// Presented returns how many frames have been presented.
func (s *ImageSurface) Presented() int {
	return s.presented
}

// Snapshot returns a copy of the output surface.
func (s *ImageSurface) Snapshot() *image.RGBA {
	img := image.NewRGBA(s.target.Bounds())
	copy(img.Pix, s.target.Pix)
	return img
}

// Close releases the surface. Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// FitRect returns the largest rectangle with the aspect ratio of src that
// fits inside dst, centered in dst.
func FitRect(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}

	// Compare dw/sw with dh/sh without floats.
	w, h := dw, dh
	if dw*sh > dh*sw {
		w = sw * dh / sh
	} else {
		h = sh * dw / sw
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

var _ Presenter = (*ImageSurface)(nil)
