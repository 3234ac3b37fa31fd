// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
)

// Common errors returned by presenters.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrClosed is returned when a closed presenter is used.
	ErrClosed = errors.New("surface: presenter is closed")
)

// Presenter is the presentation target the canvas renders into.
//
// The frame returned by Frame is a flat, row-major RGBA buffer of
// FrameSize width*height*4 bytes. The caller writes the merged canvas into
// it and then calls Present to push it to the output surface.
type Presenter interface {
	// FrameSize returns the logical frame dimensions in pixels.
	FrameSize() (width, height int)

	// Frame returns the presentation buffer. The slice stays valid until
	// the presenter is closed; Resize does not reallocate it.
	Frame() []byte

	// Resize changes the size of the output surface. The frame keeps its
	// logical size and is scaled on presentation.
	Resize(width, height int) error

	// Present pushes the current frame to the output surface.
	Present() error

	// Close releases resources. Close is idempotent.
	Close() error
}
