// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command brushy paints a scripted demo with the brushy engine and saves it
// as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/brushy"
	"github.com/gogpu/brushy/surface"
)

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width")
		height  = flag.Int("height", 600, "canvas height")
		scale   = flag.Int("scale", 1, "output scale factor")
		output  = flag.String("output", "brushy.png", "output file")
		presets = flag.String("presets", "", "TOML brush preset file")
		name    = flag.String("brush", "", "preset name (requires -presets, default: first preset)")
		backend = flag.String("backend", "", "presenter backend (default: best available)")
		hex     = flag.String("color", "", "paint color as #rrggbb (overrides the preset)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		brushy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []brushy.CanvasOption{brushy.WithColor(brushy.Hex("#3080ff"))}
	if *presets != "" {
		p, err := loadPreset(*presets, *name)
		if err != nil {
			log.Fatalf("Failed to load presets: %v", err)
		}
		opts = append(opts, brushy.WithBrush(p.Brush), brushy.WithColor(p.Color))
	}
	if *hex != "" {
		c, err := brushy.ParseHex(*hex)
		if err != nil {
			log.Fatalf("Invalid color: %v", err)
		}
		opts = append(opts, brushy.WithColor(c))
	}

	canvas, err := brushy.NewCanvas(*width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	out, err := openPresenter(*backend, *width, *height)
	if err != nil {
		log.Fatalf("Failed to open presenter: %v", err)
	}
	defer out.Close()
	r, err := brushy.NewRenderer(canvas, out)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	if *scale > 1 {
		if err := r.ResizeSurface(*width**scale, *height**scale); err != nil {
			log.Fatalf("Failed to resize output: %v", err)
		}
	}

	if err := drawWave(canvas); err != nil {
		log.Fatalf("Failed to paint: %v", err)
	}
	if err := drawSpiral(canvas); err != nil {
		log.Fatalf("Failed to paint: %v", err)
	}
	if err := eraseDiagonal(canvas); err != nil {
		log.Fatalf("Failed to erase: %v", err)
	}

	if err := r.Render(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	size := out.Snapshot().Bounds().Size()
	log.Printf("Demo saved to %s (%dx%d)\n", *output, size.X, size.Y)
}

// imagePresenter is a presenter whose output can be saved as an image.
type imagePresenter interface {
	surface.Presenter
	Snapshot() *image.RGBA
}

// openPresenter creates a presenter through the surface registry. An empty
// backend selects the best available one.
func openPresenter(backend string, width, height int) (imagePresenter, error) {
	var (
		p   surface.Presenter
		err error
	)
	if backend == "" {
		p, err = surface.NewPresenter(width, height)
	} else {
		p, err = surface.NewPresenterByName(backend, width, height)
	}
	if err != nil {
		return nil, err
	}
	ip, ok := p.(imagePresenter)
	if !ok {
		_ = p.Close()
		return nil, fmt.Errorf("backend %q cannot produce images (available: %v)", backend, surface.Available())
	}
	return ip, nil
}

func loadPreset(path, name string) (brushy.Preset, error) {
	all, err := brushy.LoadPresets(path)
	if err != nil {
		return brushy.Preset{}, err
	}
	return brushy.SelectPreset(all, name)
}

// drawWave paints a sine wave across the bottom layer, one segment per
// simulated pointer event.
func drawWave(c *brushy.Canvas) error {
	w, h := float64(c.Width()), float64(c.Height())
	last := brushy.Pt(0, h/2)
	for x := 8.0; x <= w; x += 8 {
		cur := brushy.Pt(x, h/2+math.Sin(x/w*4*math.Pi)*h/4)
		if err := c.Paint(cur, last); err != nil {
			return err
		}
		last = cur
	}
	return nil
}

// drawSpiral paints a spiral on a second layer with a harder brush.
func drawSpiral(c *brushy.Canvas) error {
	if err := c.SetCurrentLayer(1); err != nil {
		return err
	}
	defer func() { _ = c.SetCurrentLayer(0) }()

	orig, origColor := c.Brush(), c.Color()
	defer func() {
		_ = c.SetBrush(orig)
		c.SetColor(origColor)
	}()
	if sc, ok := orig.(brushy.SoftCircle); ok {
		if err := c.SetBrush(sc.WithHardness(0.6).WithRadius(6)); err != nil {
			return err
		}
	}
	c.SetColor(brushy.Hex("#ffcc00"))

	cx, cy := float64(c.Width())/2, float64(c.Height())/2
	maxR := math.Min(cx, cy) * 0.8
	last := brushy.Pt(cx, cy)
	for a := 0.1; a < 8*math.Pi; a += 0.1 {
		r := maxR * a / (8 * math.Pi)
		cur := brushy.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
		if err := c.Paint(cur, last); err != nil {
			return err
		}
		last = cur
	}
	return nil
}

func eraseDiagonal(c *brushy.Canvas) error {
	w, h := float64(c.Width()), float64(c.Height())
	return c.Erase(brushy.Pt(w, h), brushy.Pt(0, 0))
}

func savePNG(path string, s imagePresenter) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Snapshot()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
