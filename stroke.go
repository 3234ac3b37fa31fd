// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidStroke is returned for strokes whose geometry cannot be
// rasterized: non-finite cursor coordinates or more than MaxStrokeSteps
// stamps in one segment.
var ErrInvalidStroke = errors.New("brushy: invalid stroke")

// MaxStrokeSteps bounds the number of stamp intervals in one segment.
const MaxStrokeSteps = 1 << 20

// Stroke is one segment of pointer motion to be rasterized with a brush.
//
// The stroke covers From..To with evenly spaced stamps. The minimum gap
// between stamp centers is Radius*Spacing of the brush; consecutive stamps
// overlap on purpose, which is how a stroke builds up opacity.
type Stroke struct {
	Brush Brush

	// Color is ignored in BlendErase mode.
	Color RGB

	Mode BlendMode

	// From is the previous cursor position, To the current one.
	From, To Point
}

// NewStroke returns a stroke after validating its brush.
func NewStroke(b Brush, c RGB, mode BlendMode, from, to Point) (Stroke, error) {
	s := Stroke{Brush: b, Color: c, Mode: mode, From: from, To: to}
	if err := s.validate(); err != nil {
		return Stroke{}, err
	}
	return s, nil
}

func (s Stroke) validate() error {
	if s.Brush == nil {
		return fmt.Errorf("%w: nil brush", ErrInvalidBrush)
	}
	return s.Brush.Validate()
}

// StepCount returns how many intervals a segment of the given length is
// split into: max(1, round(distance/minSpacing)). minSpacing must be > 0.
func StepCount(distance, minSpacing float64) int {
	steps := math.Round(distance / minSpacing)
	if !(steps >= 1) {
		return 1
	}
	if steps > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(steps)
}

// Placements returns the stamp centers of the stroke.
//
// A stroke of length L yields StepCount(L, radius*spacing)+1 centers at
// t = i/steps, first at From and last at To. A stationary stroke
// (From == To, a single click) yields exactly one center.
func (s Stroke) Placements() ([]Point, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.From == s.To {
		return []Point{s.From}, nil
	}

	distance := s.To.Sub(s.From).Length()
	if !finite(distance) {
		return nil, fmt.Errorf("%w: non-finite stroke length %v", ErrInvalidStroke, distance)
	}
	steps := StepCount(distance, s.Brush.Radius()*s.Brush.Spacing())
	if steps > MaxStrokeSteps {
		return nil, fmt.Errorf("%w: %d steps exceeds %d", ErrInvalidStroke, steps, MaxStrokeSteps)
	}

	out := make([]Point, steps+1)
	for i := range out {
		out[i] = s.From.Lerp(s.To, float64(i)/float64(steps))
	}
	return out, nil
}

// Apply rasterizes the stroke into dst and returns the number of stamps
// placed. The stamp is generated once and reused at every center, each
// rounded to the nearest pixel.
func (s Stroke) Apply(dst *Layer) (int, error) {
	centers, err := s.Placements()
	if err != nil {
		return 0, err
	}

	return s.stampAt(dst, s.Brush.ComputeStamp(s.Color), centers), nil
}

// stampAt blends stamp at every center. stamp must be the stamp of the
// stroke brush and color.
func (s Stroke) stampAt(dst *Layer, stamp *Stamp, centers []Point) int {
	opacity := s.Brush.Opacity()
	for _, c := range centers {
		BlendStamp(dst, stamp, c.Round(), s.Mode, opacity)
	}
	return len(centers)
}
