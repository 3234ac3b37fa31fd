// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"errors"
	"fmt"

	"github.com/gogpu/brushy/surface"
)

// Renderer errors.
var (
	// ErrNilPresenter is returned when a nil presenter is passed.
	ErrNilPresenter = errors.New("brushy: nil presenter")

	// ErrNilCanvas is returned when a nil canvas is passed.
	ErrNilCanvas = errors.New("brushy: nil canvas")

	// ErrFrameSize is returned when the presenter frame does not match the
	// canvas size.
	ErrFrameSize = errors.New("brushy: presenter frame size does not match canvas")

	// ErrPresent wraps presenter failures. Failed renders are recoverable:
	// the canvas stays dirty and the next Render tries again.
	ErrPresent = errors.New("brushy: present failed")
)

// Renderer connects a Canvas to the presentation target of its host.
//
// The host calls Paint/Erase on Canvas() as input arrives, Render once per
// redraw, and ResizeSurface when its window changes size.
type Renderer struct {
	canvas    *Canvas
	presenter surface.Presenter
}

// NewRenderer creates a renderer. The presenter frame must have the canvas
// size.
func NewRenderer(c *Canvas, p surface.Presenter) (*Renderer, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	if p == nil {
		return nil, ErrNilPresenter
	}
	if w, h := p.FrameSize(); w != c.width || h != c.height || len(p.Frame()) != w*h*4 {
		return nil, fmt.Errorf("%w: frame %dx%d, canvas %dx%d", ErrFrameSize, w, h, c.width, c.height)
	}
	return &Renderer{canvas: c, presenter: p}, nil
}

// Canvas returns the canvas being rendered.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Presenter returns the presentation target.
func (r *Renderer) Presenter() surface.Presenter {
	return r.presenter
}

// Render merges the layers into the presentation buffer and presents it.
//
// Render is a no-op returning nil when the canvas is not dirty. The dirty
// flag is cleared only after a successful Present; on failure the error
// wraps ErrPresent and the canvas layers are left untouched.
func (r *Renderer) Render() error {
	c := r.canvas
	if !c.dirty {
		return nil
	}

	frame := r.presenter.Frame()
	MergeLayers(frame, c.layers)
	Logger().Debug("brushy: merged layers", "layers", len(c.layers), "bytes", len(frame))

	if err := r.presenter.Present(); err != nil {
		Logger().Warn("brushy: present failed", "err", err)
		return fmt.Errorf("%w: %w", ErrPresent, err)
	}
	c.dirty = false
	return nil
}

// ResizeSurface tells the presenter that the output surface changed size.
// Layer buffers keep their size. The canvas is marked dirty so the next
// Render repaints the new surface. A zero-sized request (e.g. a minimized
// window) is ignored.
func (r *Renderer) ResizeSurface(width, height int) error {
	if width <= 0 || height <= 0 {
		Logger().Debug("brushy: ignoring empty surface size", "width", width, "height", height)
		return nil
	}
	if err := r.presenter.Resize(width, height); err != nil {
		Logger().Warn("brushy: surface resize failed", "width", width, "height", height, "err", err)
		return fmt.Errorf("brushy: resize surface: %w", err)
	}
	r.canvas.dirty = true
	Logger().Info("brushy: surface resized", "width", width, "height", height)
	return nil
}
