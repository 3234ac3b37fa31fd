// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/brushy"
	"github.com/gogpu/brushy/surface"
)

// framePresenter is a presenter without image output.
type framePresenter struct {
	frame []byte
	w, h  int
}

func (p *framePresenter) FrameSize() (int, int) { return p.w, p.h }
func (p *framePresenter) Frame() []byte         { return p.frame }
func (p *framePresenter) Resize(int, int) error { return nil }
func (p *framePresenter) Present() error        { return nil }
func (p *framePresenter) Close() error          { return nil }

func TestOpenPresenter(t *testing.T) {
	surface.Register("frame-only", 1, func(opts surface.Options) (surface.Presenter, error) {
		return &framePresenter{frame: make([]byte, opts.Width*opts.Height*4), w: opts.Width, h: opts.Height}, nil
	}, nil)
	t.Cleanup(func() { surface.Unregister("frame-only") })

	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{"best available", "", false},
		{"image", "image", false},
		{"unknown", "vulkan-direct", true},
		{"no image output", "frame-only", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := openPresenter(tt.backend, 8, 6)
			if tt.wantErr {
				if err == nil {
					t.Errorf("openPresenter(%q) succeeded, want error", tt.backend)
				}
				return
			}
			if err != nil {
				t.Fatalf("openPresenter(%q) error = %v", tt.backend, err)
			}
			defer p.Close()
			if _, ok := p.(*surface.ImageSurface); !ok {
				t.Errorf("openPresenter(%q) = %T, want *surface.ImageSurface", tt.backend, p)
			}
			if w, h := p.FrameSize(); w != 8 || h != 6 {
				t.Errorf("FrameSize() = %dx%d, want 8x6", w, h)
			}
		})
	}

	var notFound *surface.BackendNotFoundError
	if _, err := openPresenter("vulkan-direct", 8, 6); !errors.As(err, &notFound) {
		t.Errorf("openPresenter(unknown) error = %v, want BackendNotFoundError", err)
	}
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brushes.toml")
	data := "[brushes.pencil]\nradius = 2.0\n\n[brushes.marker]\nradius = 6.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := loadPreset(path, "")
	if err != nil {
		t.Fatalf("loadPreset(no name) error = %v", err)
	}
	if p.Name != "marker" {
		t.Errorf("loadPreset(no name) = %q, want first preset marker", p.Name)
	}
	if p, _ := loadPreset(path, "pencil"); p.Brush.Radius() != 2 {
		t.Errorf("pencil radius = %v, want 2", p.Brush.Radius())
	}
	if _, err := loadPreset(path, "chalk"); !errors.Is(err, brushy.ErrPresetNotFound) {
		t.Errorf("loadPreset(chalk) error = %v, want ErrPresetNotFound", err)
	}
}

func TestDemoWritesPNG(t *testing.T) {
	c := brushy.MustNewCanvas(40, 30, brushy.WithColor(brushy.Red))
	out, err := openPresenter("image", 40, 30)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	r, err := brushy.NewRenderer(c, out)
	if err != nil {
		t.Fatal(err)
	}

	for _, draw := range []func(*brushy.Canvas) error{drawWave, drawSpiral, eraseDiagonal} {
		if err := draw(c); err != nil {
			t.Fatalf("paint step: %v", err)
		}
	}
	if c.CurrentLayer() != 0 || c.Color() != brushy.Red {
		t.Error("drawSpiral did not restore the layer and color")
	}
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "demo.png")
	if err := savePNG(path, out); err != nil {
		t.Fatalf("savePNG() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("image size = %v, want 40x30", b.Size())
	}
}
