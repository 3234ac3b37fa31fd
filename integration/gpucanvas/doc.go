// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpucanvas presents brushy canvases in gogpu GPU-accelerated
// windows.
//
// The presenter keeps the merged canvas in a CPU frame and uploads it to a
// GPU texture when the window redraws:
//
//	brushy.Canvas (layers) -> Frame (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	p, err := gpucanvas.New(app.GPUContextProvider(), 800, 600)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	canvas := brushy.MustNewCanvas(800, 600)
//	r, _ := brushy.NewRenderer(canvas, p)
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = r.Render()
//	    _ = p.RenderTo(dc.AsTextureDrawer())
//	})
//
// The texture is created lazily on the first RenderTo and updated in place
// afterwards. The canvas is drawn centered in the surface set by Resize.
//
// # Thread Safety
//
// Presenter is NOT safe for concurrent use.
package gpucanvas
