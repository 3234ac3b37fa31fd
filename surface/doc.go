// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides presentation targets for brushy.
//
// A [Presenter] owns the presentation buffer (the frame) that the canvas
// merges its layers into, and knows how to get that frame onto an output
// surface. The frame always has the logical canvas size; the output surface
// may have any size and is resized independently with [Presenter.Resize].
//
// # Backends
//
// The built-in "image" backend is [ImageSurface], a CPU presenter that scales
// the frame onto an *image.RGBA with golang.org/x/image/draw. Other backends
// (for example the GPU presenter in integration/gpucanvas) can register
// themselves with [Register] and be selected with [NewPresenterByName].
//
// # Thread Safety
//
// Presenters are NOT safe for concurrent use. The registry is.
package surface
