// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/brushy/internal/cache"
)

// stampCacheSize bounds the number of generated stamps a canvas keeps.
const stampCacheSize = 16

// stampKey identifies a generated stamp. Brushes are immutable values, so
// equal brushes and colors produce identical stamps.
type stampKey struct {
	brush Brush
	color RGB
}

// Canvas errors.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("brushy: invalid dimensions")

	// ErrLayerIndex is returned when a layer index is out of range.
	ErrLayerIndex = errors.New("brushy: layer index out of range")
)

// Canvas is an ordered stack of equally sized layers, one of which is the
// current layer that Paint and Erase modify.
//
// Every successful Paint or Erase sets the dirty flag; a Renderer merges the
// layers into its presentation buffer only while the canvas is dirty.
// Layer buffers have a fixed size for the lifetime of the canvas.
//
// Canvas is NOT safe for concurrent use. Paint, Erase and Render are meant
// to be called from one UI goroutine; if that ever changes, no stamp blend
// may interleave with a merge or with another blend into the same layer.
type Canvas struct {
	width   int
	height  int
	layers  []*Layer
	current int
	dirty   bool

	brush  Brush
	eraser Brush
	color  RGB

	stamps *cache.Cache[stampKey, *Stamp]
}

// NewCanvas creates a canvas of transparent layers.
//
// The canvas starts dirty so the first Render presents a cleared frame.
// Returns ErrInvalidDimensions for non-positive sizes and ErrInvalidBrush if
// a configured brush does not validate.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateBrush(o.brush); err != nil {
		return nil, err
	}
	if err := validateBrush(o.eraser); err != nil {
		return nil, err
	}

	c := &Canvas{
		width:  width,
		height: height,
		layers: make([]*Layer, 0, o.layers),
		dirty:  true,
		brush:  o.brush,
		eraser: o.eraser,
		color:  o.color,
		stamps: cache.New[stampKey, *Stamp](stampCacheSize),
	}
	for range o.layers {
		c.layers = append(c.layers, NewLayer(width, height))
	}

	Logger().Info("brushy: canvas created", "width", width, "height", height, "layers", len(c.layers))
	return c, nil
}

// MustNewCanvas is like NewCanvas but panics on error.
func MustNewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c, err := NewCanvas(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func validateBrush(b Brush) error {
	if b == nil {
		return fmt.Errorf("%w: nil brush", ErrInvalidBrush)
	}
	return b.Validate()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Paint strokes the current layer from last to cursor with the brush and
// color.
func (c *Canvas) Paint(cursor, last Point) error {
	return c.stroke(Stroke{Brush: c.brush, Color: c.color, Mode: BlendPaint, From: last, To: cursor})
}

// Erase strokes the current layer from last to cursor with the eraser.
func (c *Canvas) Erase(cursor, last Point) error {
	return c.stroke(Stroke{Brush: c.eraser, Mode: BlendErase, From: last, To: cursor})
}

func (c *Canvas) stroke(s Stroke) error {
	centers, err := s.Placements()
	if err != nil {
		return err
	}
	stamp := c.stamps.GetOrCreate(stampKey{s.Brush, s.Color}, func() *Stamp {
		return s.Brush.ComputeStamp(s.Color)
	})
	n := s.stampAt(c.layers[c.current], stamp, centers)
	c.dirty = true
	Logger().Debug("brushy: stroke", "mode", s.Mode, "layer", c.current, "stamps", n)
	return nil
}

// Brush returns the painting brush.
func (c *Canvas) Brush() Brush {
	return c.brush
}

// SetBrush replaces the painting brush. Invalid brushes are rejected and
// the previous brush is kept.
func (c *Canvas) SetBrush(b Brush) error {
	if err := validateBrush(b); err != nil {
		return err
	}
	c.brush = b
	return nil
}

// Eraser returns the erasing brush.
func (c *Canvas) Eraser() Brush {
	return c.eraser
}

// SetEraser replaces the erasing brush. Invalid brushes are rejected and
// the previous eraser is kept.
func (c *Canvas) SetEraser(b Brush) error {
	if err := validateBrush(b); err != nil {
		return err
	}
	c.eraser = b
	return nil
}

// Color returns the paint color.
func (c *Canvas) Color() RGB {
	return c.color
}

// SetColor sets the paint color.
func (c *Canvas) SetColor(col RGB) {
	c.color = col
}

// Layers returns the layers bottom first. The slice is a copy; the layers
// are shared.
func (c *Canvas) Layers() []*Layer {
	out := make([]*Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// Layer returns the layer at index i.
func (c *Canvas) Layer(i int) (*Layer, error) {
	if i < 0 || i >= len(c.layers) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLayerIndex, i, len(c.layers))
	}
	return c.layers[i], nil
}

// AddLayer appends a transparent layer on top of the stack and returns it.
func (c *Canvas) AddLayer() *Layer {
	l := NewLayer(c.width, c.height)
	c.layers = append(c.layers, l)
	c.dirty = true
	return l
}

// CurrentLayer returns the index of the layer Paint and Erase modify.
func (c *Canvas) CurrentLayer() int {
	return c.current
}

// SetCurrentLayer selects the layer Paint and Erase modify.
func (c *Canvas) SetCurrentLayer(i int) error {
	if i < 0 || i >= len(c.layers) {
		return fmt.Errorf("%w: %d of %d", ErrLayerIndex, i, len(c.layers))
	}
	c.current = i
	return nil
}

// Dirty reports whether there are changes not yet presented.
func (c *Canvas) Dirty() bool {
	return c.dirty
}

// MarkDirty forces the next Render to merge and present.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// Snapshot merges all layers into a new image without touching the dirty
// flag.
func (c *Canvas) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	MergeLayers(img.Pix, c.layers)
	return img
}
