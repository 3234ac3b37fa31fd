// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"image/color"
	"testing"

	"github.com/google/uuid"
)

func TestNewLayer(t *testing.T) {
	l := NewLayer(4, 3)
	if l.Width() != 4 || l.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", l.Width(), l.Height())
	}
	if len(l.Data()) != 4*3*4 {
		t.Errorf("len(Data()) = %d, want %d", len(l.Data()), 4*3*4)
	}
	for i, v := range l.Data() {
		if v != 0 {
			t.Fatalf("new layer not transparent at byte %d", i)
		}
	}
	if l.ID() == uuid.Nil {
		t.Error("ID() = uuid.Nil, want a generated id")
	}
	if NewLayer(1, 1).ID() == l.ID() {
		t.Error("two layers share an id")
	}
	if neg := NewLayer(-2, 5); len(neg.Data()) != 0 {
		t.Errorf("negative width layer has %d bytes", len(neg.Data()))
	}
}

func TestLayerPixel(t *testing.T) {
	l := NewLayer(3, 3)
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	l.SetPixel(1, 2, c)

	if got := l.Pixel(1, 2); got != c {
		t.Errorf("Pixel(1,2) = %v, want %v", got, c)
	}
	i := (2*3 + 1) * 4
	if d := l.Data(); d[i] != 10 || d[i+1] != 20 || d[i+2] != 30 || d[i+3] != 40 {
		t.Errorf("raw data = %v", d[i:i+4])
	}
	if got := l.At(1, 2); got != color.Color(c) {
		t.Errorf("At(1,2) = %v, want %v", got, c)
	}
}

// TestLayerPixel_OutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestLayerPixel_OutOfBounds(t *testing.T) {
	l := NewLayer(2, 2)
	for _, p := range []struct{ x, y int }{{-1, 0}, {2, 0}, {0, -1}, {0, 2}, {100, 100}} {
		l.SetPixel(p.x, p.y, color.NRGBA{R: 255, A: 255})
		if got := l.Pixel(p.x, p.y); got != (color.NRGBA{}) {
			t.Errorf("Pixel(%d,%d) = %v, want transparent", p.x, p.y, got)
		}
	}
	for i, v := range l.Data() {
		if v != 0 {
			t.Fatalf("out-of-bounds write modified byte %d", i)
		}
	}
}

func TestLayerClearAndImage(t *testing.T) {
	l := NewLayer(2, 2)
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	l.Clear(c)

	img := l.ToImage()
	if img.Bounds() != l.Bounds() {
		t.Errorf("ToImage bounds = %v, want %v", img.Bounds(), l.Bounds())
	}
	if got := img.NRGBAAt(1, 1); got != c {
		t.Errorf("ToImage pixel = %v, want %v", got, c)
	}
	img.Pix[0] = 99
	if l.Data()[0] == 99 {
		t.Error("ToImage shares memory with the layer")
	}
	if l.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() != NRGBAModel")
	}
}
