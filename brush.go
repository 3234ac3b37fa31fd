// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBrush is returned when brush parameters cannot produce a stroke:
// a non-positive radius or spacing, hardness or opacity outside [0, 1], or a
// non-finite value anywhere.
var ErrInvalidBrush = errors.New("brushy: invalid brush")

// Brush describes the shape deposited along a stroke.
// This is a sealed interface - only types in this package implement it.
//
// Brushes are values: the With* methods return a modified copy and never
// mutate the receiver, so a brush shared between goroutines is never
// observed half-updated. The With* methods do not validate; call Validate
// (or hand the brush to a Canvas or Stroke, which do) before painting.
//
// Supported brush types:
//   - SoftCircle: a disc with an opaque core and a smoothstep falloff
//
// Example usage:
//
//	b := brushy.DefaultBrush().WithRadius(24).WithOpacity(0.5)
//	if err := b.Validate(); err != nil {
//	    return err
//	}
//	stamp := b.ComputeStamp(brushy.Red)
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ID returns the brush identifier.
	ID() string

	// Radius returns the brush radius in pixels.
	Radius() float64

	// Spacing returns the gap between consecutive stamps along a stroke,
	// as a fraction of the radius.
	Spacing() float64

	// Opacity returns the global stamp strength in [0, 1].
	Opacity() float64

	WithRadius(r float64) Brush
	WithSpacing(s float64) Brush
	WithOpacity(o float64) Brush

	// ComputeStamp generates the weighted pixel mask of one dab in color c.
	ComputeStamp(c RGB) *Stamp

	// Validate reports ErrInvalidBrush if the parameters are unusable.
	Validate() error
}

// BaseSettings holds the parameters shared by every brush type.
type BaseSettings struct {
	// ID names the brush, e.g. "soft-circle".
	ID string `toml:"id"`

	// Radius in pixels, in (0, MaxRadius].
	Radius float64 `toml:"radius"`

	// Spacing is the minimum distance between stamp centers as a fraction
	// of Radius. Must be > 0.
	Spacing float64 `toml:"spacing"`

	// Opacity in [0, 1] scales every stamp pixel.
	Opacity float64 `toml:"opacity"`
}

// Validate checks the shared parameters.
func (s BaseSettings) Validate() error {
	switch {
	case !finite(s.Radius) || s.Radius <= 0:
		return fmt.Errorf("%w: radius %v must be > 0", ErrInvalidBrush, s.Radius)
	case s.Radius > MaxRadius:
		return fmt.Errorf("%w: radius %v exceeds %v", ErrInvalidBrush, s.Radius, MaxRadius)
	case !finite(s.Spacing) || s.Spacing <= 0:
		return fmt.Errorf("%w: spacing %v must be > 0", ErrInvalidBrush, s.Spacing)
	case !unitRange(s.Opacity):
		return fmt.Errorf("%w: opacity %v must be in [0, 1]", ErrInvalidBrush, s.Opacity)
	}
	return nil
}

// MaxRadius bounds the brush radius so a stamp holds at most
// (2*MaxRadius+1)^2 pixels.
const MaxRadius = 512.0

// Default soft circle parameters.
const (
	DefaultBrushID  = "soft-circle"
	DefaultRadius   = 10.0
	DefaultHardness = 0.1
	DefaultSpacing  = 0.1
	DefaultOpacity  = 1.0
)

// DefaultBrush returns the canonical soft circle brush.
func DefaultBrush() Brush {
	return SoftCircle{
		Base: BaseSettings{
			ID:      DefaultBrushID,
			Radius:  DefaultRadius,
			Spacing: DefaultSpacing,
			Opacity: DefaultOpacity,
		},
		Hardness: DefaultHardness,
	}
}

// SoftCircle is a round brush with a fully opaque core that fades out to the
// radius with a smoothstep curve.
type SoftCircle struct {
	Base BaseSettings

	// Hardness is the fraction of the radius that stays fully opaque.
	Hardness float64
}

// NewSoftCircle returns a validated soft circle brush.
func NewSoftCircle(base BaseSettings, hardness float64) (SoftCircle, error) {
	b := SoftCircle{Base: base, Hardness: hardness}
	if err := b.Validate(); err != nil {
		return SoftCircle{}, err
	}
	return b, nil
}

func (SoftCircle) brushMarker() {}

// ID implements Brush.
func (b SoftCircle) ID() string { return b.Base.ID }

// Radius implements Brush.
func (b SoftCircle) Radius() float64 { return b.Base.Radius }

// Spacing implements Brush.
func (b SoftCircle) Spacing() float64 { return b.Base.Spacing }

// Opacity implements Brush.
func (b SoftCircle) Opacity() float64 { return b.Base.Opacity }

// WithRadius implements Brush.
func (b SoftCircle) WithRadius(r float64) Brush {
	b.Base.Radius = r
	return b
}

// WithSpacing implements Brush.
func (b SoftCircle) WithSpacing(s float64) Brush {
	b.Base.Spacing = s
	return b
}

// WithOpacity implements Brush.
func (b SoftCircle) WithOpacity(o float64) Brush {
	b.Base.Opacity = o
	return b
}

// WithHardness returns a copy with the hardness replaced.
func (b SoftCircle) WithHardness(h float64) SoftCircle {
	b.Hardness = h
	return b
}

// ComputeStamp implements Brush.
func (b SoftCircle) ComputeStamp(c RGB) *Stamp {
	return SoftCircleStamp(b.Base.Radius, b.Hardness, b.Base.Opacity, c)
}

// Validate implements Brush.
func (b SoftCircle) Validate() error {
	if err := b.Base.Validate(); err != nil {
		return err
	}
	if !unitRange(b.Hardness) {
		return fmt.Errorf("%w: hardness %v must be in [0, 1]", ErrInvalidBrush, b.Hardness)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func unitRange(v float64) bool {
	return v >= 0 && v <= 1
}
