// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Two transparent layers, default brush at 15% opacity, white paint
//	c, err := brushy.NewCanvas(800, 600)
//
//	// Three layers and a red 20px brush
//	c, err := brushy.NewCanvas(800, 600,
//	    brushy.WithLayers(3),
//	    brushy.WithBrush(brushy.DefaultBrush().WithRadius(20)),
//	    brushy.WithColor(brushy.Red),
//	)
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	layers int
	brush  Brush
	eraser Brush
	color  RGB

	// eraserSet records an explicit WithEraser.
	eraserSet bool
}

// Canvas defaults.
const (
	DefaultLayers        = 2
	DefaultStrokeOpacity = 0.15
)

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	b := DefaultBrush().WithOpacity(DefaultStrokeOpacity)
	return canvasOptions{
		layers: DefaultLayers,
		brush:  b,
		eraser: b,
		color:  White,
	}
}

// WithLayers sets the number of transparent layers the canvas starts with.
// Values below 1 are raised to 1.
func WithLayers(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.layers = max(n, 1)
	}
}

// WithBrush sets the painting brush. Unless WithEraser is also given, the
// same brush is used for erasing.
func WithBrush(b Brush) CanvasOption {
	return func(o *canvasOptions) {
		o.brush = b
		if !o.eraserSet {
			o.eraser = b
		}
	}
}

// WithEraser sets the erasing brush.
func WithEraser(b Brush) CanvasOption {
	return func(o *canvasOptions) {
		o.eraser = b
		o.eraserSet = true
	}
}

// WithColor sets the paint color.
func WithColor(c RGB) CanvasOption {
	return func(o *canvasOptions) {
		o.color = c
	}
}
