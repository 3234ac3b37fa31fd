// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package brushy is a raster painting engine: brush stamps, strokes and
// layer compositing for interactive drawing surfaces.
//
// # Overview
//
// A Canvas owns an ordered stack of straight-alpha RGBA layers. Pointer
// input is turned into strokes between the previous and the current cursor
// position; each stroke places copies of a brush stamp along the segment
// and blends them into the current layer:
//
//	Brush -> Stamp -> Stroke (placements) -> Layer -> Merge -> Presenter
//
// # Quick Start
//
//	canvas := brushy.MustNewCanvas(800, 600, brushy.WithColor(brushy.Red))
//	r, err := brushy.NewRenderer(canvas, surface.NewImageSurface(800, 600))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = canvas.Paint(brushy.Pt(120, 80), brushy.Pt(100, 80))
//	_ = canvas.Erase(brushy.Pt(110, 80), brushy.Pt(110, 80))
//	_ = r.Render()
//
// # Brushes
//
// Brush is a sealed interface; SoftCircle is the built-in implementation.
// Brushes are immutable values, and the With* methods return modified
// copies. Brushes can also be loaded by name from TOML presets with
// LoadPresets.
//
// # Blending
//
// Paint accumulates every channel as D + S*(1-D). Erase lowers layer alpha
// by the stamp alpha times the brush opacity and leaves color untouched.
// Layers are merged bottom first with straight-alpha source-over.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive diagnostic
// output through log/slog.
//
// # Thread Safety
//
// Canvas and Renderer are NOT safe for concurrent use. Drive them from the
// host's event loop or use external synchronization.
package brushy
