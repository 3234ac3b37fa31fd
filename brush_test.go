// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultBrush(t *testing.T) {
	b := DefaultBrush()
	sc, ok := b.(SoftCircle)
	if !ok {
		t.Fatalf("DefaultBrush() is %T, want SoftCircle", b)
	}
	if b.ID() != "soft-circle" {
		t.Errorf("ID() = %q, want soft-circle", b.ID())
	}
	if b.Radius() != 10 || b.Spacing() != 0.1 || b.Opacity() != 1 || sc.Hardness != 0.1 {
		t.Errorf("DefaultBrush() = %+v", sc)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("DefaultBrush().Validate() = %v", err)
	}
}

// TestBrushWithCopies verifies builders return modified copies and leave the
// receiver untouched.
func TestBrushWithCopies(t *testing.T) {
	orig := DefaultBrush()

	r := orig.WithRadius(3)
	s := orig.WithSpacing(0.5)
	o := orig.WithOpacity(0.25)
	h := orig.(SoftCircle).WithHardness(0.9)

	if orig.Radius() != 10 || orig.Spacing() != 0.1 || orig.Opacity() != 1 || orig.(SoftCircle).Hardness != 0.1 {
		t.Errorf("builders mutated the receiver: %+v", orig)
	}
	if r.Radius() != 3 || r.Spacing() != 0.1 || r.Opacity() != 1 {
		t.Errorf("WithRadius(3) = %+v", r)
	}
	if s.Spacing() != 0.5 || s.Radius() != 10 {
		t.Errorf("WithSpacing(0.5) = %+v", s)
	}
	if o.Opacity() != 0.25 || o.ID() != "soft-circle" {
		t.Errorf("WithOpacity(0.25) = %+v", o)
	}
	if h.Hardness != 0.9 || h.Radius() != 10 {
		t.Errorf("WithHardness(0.9) = %+v", h)
	}
}

func TestBrushValidate(t *testing.T) {
	tests := []struct {
		name    string
		brush   Brush
		wantErr bool
	}{
		{"default", DefaultBrush(), false},
		{"tiny radius", DefaultBrush().WithRadius(0.01), false},
		{"zero opacity", DefaultBrush().WithOpacity(0), false},
		{"zero radius", DefaultBrush().WithRadius(0), true},
		{"negative radius", DefaultBrush().WithRadius(-1), true},
		{"infinite radius", DefaultBrush().WithRadius(math.Inf(1)), true},
		{"max radius", DefaultBrush().WithRadius(MaxRadius), false},
		{"radius above max", DefaultBrush().WithRadius(MaxRadius + 1), true},
		{"huge radius", DefaultBrush().WithRadius(1e10), true},
		{"zero spacing", DefaultBrush().WithSpacing(0), true},
		{"negative spacing", DefaultBrush().WithSpacing(-0.5), true},
		{"NaN spacing", DefaultBrush().WithSpacing(math.NaN()), true},
		{"opacity above one", DefaultBrush().WithOpacity(1.5), true},
		{"negative opacity", DefaultBrush().WithOpacity(-0.1), true},
		{"hardness above one", DefaultBrush().(SoftCircle).WithHardness(2), true},
		{"NaN hardness", DefaultBrush().(SoftCircle).WithHardness(math.NaN()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.brush.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidBrush) {
				t.Errorf("Validate() = %v, want ErrInvalidBrush", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestNewSoftCircle(t *testing.T) {
	b, err := NewSoftCircle(BaseSettings{ID: "x", Radius: 4, Spacing: 0.2, Opacity: 0.5}, 0.3)
	if err != nil {
		t.Fatalf("NewSoftCircle() error = %v", err)
	}
	if b.ID() != "x" || b.Hardness != 0.3 {
		t.Errorf("NewSoftCircle() = %+v", b)
	}

	if _, err := NewSoftCircle(BaseSettings{Radius: 4, Spacing: 0}, 0.3); !errors.Is(err, ErrInvalidBrush) {
		t.Errorf("NewSoftCircle(spacing 0) error = %v, want ErrInvalidBrush", err)
	}
}

func TestComputeStampDispatch(t *testing.T) {
	b := DefaultBrush().WithRadius(3).WithOpacity(0.5)
	got := b.ComputeStamp(Green)
	want := SoftCircleStamp(3, DefaultHardness, 0.5, Green)

	if got.Len() != want.Len() {
		t.Fatalf("ComputeStamp() has %d pixels, want %d", got.Len(), want.Len())
	}
	for i := range got.Pixels {
		if got.Pixels[i] != want.Pixels[i] {
			t.Fatalf("pixel %d = %+v, want %+v", i, got.Pixels[i], want.Pixels[i])
		}
	}
}
