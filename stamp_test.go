// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"image"
	"math"
	"sort"
	"testing"
)

type offset struct{ x, y int }

func stampMap(s *Stamp) map[offset]uint8 {
	m := make(map[offset]uint8, s.Len())
	for _, p := range s.Pixels {
		m[offset{p.X, p.Y}] = p.Color.A
	}
	return m
}

func TestSoftCircleStamp_FullHardness(t *testing.T) {
	for _, opacity := range []float64{1, 0.5, 0.15} {
		s := SoftCircleStamp(6, 1, opacity, Red)
		want := uint8(math.Round(opacity * 255))
		if s.Len() == 0 {
			t.Fatalf("opacity %v: empty stamp", opacity)
		}
		for _, p := range s.Pixels {
			if p.Color.A != want {
				t.Fatalf("opacity %v: pixel (%d,%d) alpha = %d, want %d", opacity, p.X, p.Y, p.Color.A, want)
			}
			if p.Color.R != 255 || p.Color.G != 0 || p.Color.B != 0 {
				t.Fatalf("pixel color = %v, want red", p.Color)
			}
		}
	}
}

// TestSoftCircleStamp_ZeroHardnessFalloff checks that alpha strictly
// decreases with distance from the center when there is no opaque core.
func TestSoftCircleStamp_ZeroHardnessFalloff(t *testing.T) {
	s := SoftCircleStamp(4, 0, 1, White)

	byDist := make(map[int]uint8)
	for _, p := range s.Pixels {
		d2 := p.X*p.X + p.Y*p.Y
		if a, ok := byDist[d2]; ok && a != p.Color.A {
			t.Fatalf("pixels at squared distance %d have alphas %d and %d", d2, a, p.Color.A)
		}
		byDist[d2] = p.Color.A
	}

	dists := make([]int, 0, len(byDist))
	for d2 := range byDist {
		dists = append(dists, d2)
	}
	sort.Ints(dists)

	if dists[0] != 0 || byDist[0] != 255 {
		t.Fatalf("center alpha = %d, want 255", byDist[0])
	}
	for i := 1; i < len(dists); i++ {
		if byDist[dists[i]] >= byDist[dists[i-1]] {
			t.Errorf("alpha at d²=%d (%d) not below alpha at d²=%d (%d)",
				dists[i], byDist[dists[i]], dists[i-1], byDist[dists[i-1]])
		}
	}
}

func TestSoftCircleStamp_KnownValues(t *testing.T) {
	m := stampMap(SoftCircleStamp(4, 0, 1, White))
	tests := []struct {
		at   offset
		want uint8
	}{
		{offset{0, 0}, 255},
		{offset{1, 0}, 215},
		{offset{2, 0}, 128},
		{offset{3, 0}, 40},
	}
	for _, tt := range tests {
		if got := m[tt.at]; got != tt.want {
			t.Errorf("alpha at %v = %d, want %d", tt.at, got, tt.want)
		}
	}
	if _, ok := m[offset{4, 0}]; ok {
		t.Error("pixel on the radius has zero alpha and must be dropped")
	}
}

func TestSoftCircleStamp_Symmetry(t *testing.T) {
	for _, radius := range []float64{0.5, 1, 2.5, 7, 10.3} {
		for _, hardness := range []float64{0, 0.1, 0.5, 1} {
			m := stampMap(SoftCircleStamp(radius, hardness, 0.8, Blue))
			for o, a := range m {
				for _, q := range []offset{{-o.y, o.x}, {-o.x, -o.y}, {o.y, -o.x}, {o.y, o.x}, {-o.x, o.y}} {
					if got, ok := m[q]; !ok || got != a {
						t.Fatalf("r=%v h=%v: %v has alpha %d but %v has %d (present=%v)",
							radius, hardness, o, a, q, got, ok)
					}
				}
			}
		}
	}
}

func TestSoftCircleStamp_WithinRadius(t *testing.T) {
	for _, radius := range []float64{0.3, 1, 3.7, 12} {
		s := SoftCircleStamp(radius, 0.3, 1, White)
		for _, p := range s.Pixels {
			if d := math.Hypot(float64(p.X), float64(p.Y)); d > radius {
				t.Errorf("r=%v: pixel (%d,%d) at distance %v", radius, p.X, p.Y, d)
			}
		}
	}
}

func TestSoftCircleStamp_Degenerate(t *testing.T) {
	tiny := SoftCircleStamp(0.4, 0, 1, White)
	if tiny.Len() != 1 || tiny.Pixels[0].X != 0 || tiny.Pixels[0].Y != 0 {
		t.Errorf("sub-pixel radius stamp = %+v, want only the origin", tiny.Pixels)
	}

	for _, r := range []float64{0, -3, math.NaN(), math.Inf(1), MaxRadius + 1, 1e10} {
		if s := SoftCircleStamp(r, 0.5, 1, White); s.Len() != 0 {
			t.Errorf("SoftCircleStamp(%v) has %d pixels, want 0", r, s.Len())
		}
	}

	if s := SoftCircleStamp(5, 0.5, 0, White); s.Len() != 0 {
		t.Errorf("zero opacity stamp has %d pixels, want 0", s.Len())
	}
}

func TestStampBounds(t *testing.T) {
	s := SoftCircleStamp(3, 1, 1, White)
	if got, want := s.Bounds(), image.Rect(-3, -3, 4, 4); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got := (&Stamp{}).Bounds(); !got.Empty() {
		t.Errorf("empty stamp Bounds() = %v, want empty", got)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct{ u, want float64 }{
		{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.15625},
	}
	for _, tt := range tests {
		if got := smoothstep(tt.u); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("smoothstep(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}
