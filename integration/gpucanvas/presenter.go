// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/brushy"
	"github.com/gogpu/brushy/surface"
	"github.com/gogpu/gpucontext"
)

// Common errors returned by Presenter operations.
var (
	// ErrClosed is returned when operations are attempted on a closed presenter.
	ErrClosed = surface.ErrClosed

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = surface.ErrInvalidDimensions

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpucanvas: nil DeviceProvider")

	// ErrInvalidDrawContext is returned when the uploaded texture cannot be
	// drawn by the draw context.
	ErrInvalidDrawContext = errors.New("gpucanvas: texture is not a gpucontext.Texture")

	// ErrInvalidRenderer is returned when the draw context has no texture
	// creator.
	ErrInvalidRenderer = errors.New("gpucanvas: draw context has no TextureCreator")
)

// BackendName is the surface registry name used by Register.
const BackendName = "gpu"

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// createFunc creates a GPU texture from straight-alpha RGBA data.
type createFunc func(width, height int, data []byte) (any, error)

// Presenter implements surface.Presenter on top of a gogpu window.
type Presenter struct {
	provider gpucontext.DeviceProvider
	frame    []byte
	width    int
	height   int

	surfaceW int
	surfaceH int

	texture any
	pending bool // frame changed since the last upload
	closed  bool
	frames  int
}

var _ surface.Presenter = (*Presenter)(nil)

// New creates a presenter with a width x height frame. The provider should
// come from gogpu.App.GPUContextProvider(). The surface size starts equal to
// the frame size.
func New(provider gpucontext.DeviceProvider, width, height int) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Presenter{
		provider: provider,
		frame:    make([]byte, width*height*4),
		width:    width,
		height:   height,
		surfaceW: width,
		surfaceH: height,
	}, nil
}

// Register adds a "gpu" backend bound to provider to the global surface
// registry, preferred over software presenters.
func Register(provider gpucontext.DeviceProvider) {
	surface.Register(BackendName, 100, func(opts surface.Options) (surface.Presenter, error) {
		pr, err := New(provider, opts.Width, opts.Height)
		if err != nil {
			return nil, err
		}
		return pr, nil
	}, func() bool { return provider != nil })
}

// FrameSize returns the frame dimensions.
func (p *Presenter) FrameSize() (width, height int) {
	return p.width, p.height
}

// Frame returns the RGBA frame buffer.
func (p *Presenter) Frame() []byte {
	return p.frame
}

// SurfaceSize returns the window surface dimensions.
func (p *Presenter) SurfaceSize() (width, height int) {
	return p.surfaceW, p.surfaceH
}

// Resize records the new window surface size. The texture keeps the frame
// size and is recentered on the next RenderTo.
func (p *Presenter) Resize(width, height int) error {
	if p.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	p.surfaceW, p.surfaceH = width, height
	return nil
}

// Present schedules the frame for upload on the next RenderTo.
func (p *Presenter) Present() error {
	if p.closed {
		return ErrClosed
	}
	p.pending = true
	p.frames++
	return nil
}

// Pending reports whether a presented frame is waiting for upload.
func (p *Presenter) Pending() bool {
	return p.pending
}

// Origin returns the position at which the frame is drawn so that it is
// centered in the surface. Frames larger than the surface are anchored at
// a negative offset.
func (p *Presenter) Origin() (x, y float32) {
	return float32(p.surfaceW-p.width) / 2, float32(p.surfaceH-p.height) / 2
}

// RenderTo uploads the frame if needed and draws it to dc.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
func (p *Presenter) RenderTo(dc gpucontext.TextureDrawer) error {
	if p.closed {
		return ErrClosed
	}

	tex, err := p.upload(func(width, height int, data []byte) (any, error) {
		creator := dc.TextureCreator()
		if creator == nil {
			return nil, ErrInvalidRenderer
		}
		return creator.NewTextureFromRGBA(width, height, data)
	})
	if err != nil {
		return err
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	x, y := p.Origin()
	return dc.DrawTexture(gpuTex, x, y)
}

// upload makes sure the current texture holds the latest presented frame.
func (p *Presenter) upload(create createFunc) (any, error) {
	if p.texture == nil {
		tex, err := create(p.width, p.height, p.frame)
		if err != nil {
			return nil, fmt.Errorf("gpucanvas: NewTextureFromRGBA failed: %w", err)
		}
		// Layers hold straight alpha.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}
		p.texture = tex
		p.pending = false
		brushy.Logger().Debug("gpucanvas: texture created", "width", p.width, "height", p.height)
		return tex, nil
	}

	if !p.pending {
		return p.texture, nil
	}
	if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(p.frame); err != nil {
			return nil, fmt.Errorf("gpucanvas: texture update failed: %w", err)
		}
	}
	p.pending = false
	return p.texture, nil
}

// Texture returns the current GPU texture, or nil before the first RenderTo.
func (p *Presenter) Texture() any {
	return p.texture
}

// Provider returns the DeviceProvider. Returns nil after Close.
func (p *Presenter) Provider() gpucontext.DeviceProvider {
	if p.closed {
		return nil
	}
	return p.provider
}

// Close destroys the texture. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.texture != nil {
		if d, ok := p.texture.(textureDestroyer); ok {
			d.Destroy()
		}
		p.texture = nil
	}
	p.provider = nil
	brushy.Logger().Debug("gpucanvas: closed", "frames", p.frames)
	return nil
}
