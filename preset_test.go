// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePresets = `
[brushes.pencil]
kind = "soft-circle"
radius = 2.0
hardness = 0.9
color = "#202020"

[brushes.airbrush]
radius = 30.0
spacing = 0.05
opacity = 0.1
`

func TestDecodePresets(t *testing.T) {
	presets, err := DecodePresets(strings.NewReader(samplePresets))
	if err != nil {
		t.Fatalf("DecodePresets() error = %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("len(presets) = %d, want 2", len(presets))
	}
	if presets[0].Name != "airbrush" || presets[1].Name != "pencil" {
		t.Errorf("preset order = %s, %s; want airbrush, pencil", presets[0].Name, presets[1].Name)
	}

	// Brush IDs are the preset names, not the kind.
	air := presets[0]
	if air.Brush.ID() != "airbrush" || air.Brush.Radius() != 30 || air.Brush.Spacing() != 0.05 || air.Brush.Opacity() != 0.1 {
		t.Errorf("airbrush = %+v", air.Brush)
	}
	if sc := air.Brush.(SoftCircle); sc.Hardness != DefaultHardness {
		t.Errorf("airbrush hardness = %v, want default %v", sc.Hardness, DefaultHardness)
	}
	if air.Color != White {
		t.Errorf("airbrush color = %v, want White", air.Color)
	}

	pencil, ok := FindPreset(presets, "pencil")
	if !ok {
		t.Fatal("FindPreset(pencil) not found")
	}
	if pencil.Brush.Radius() != 2 || pencil.Brush.Spacing() != DefaultSpacing || pencil.Brush.(SoftCircle).Hardness != 0.9 {
		t.Errorf("pencil = %+v", pencil.Brush)
	}
	if pencil.Color != (RGB{0x20, 0x20, 0x20}) {
		t.Errorf("pencil color = %v", pencil.Color)
	}
	if _, ok := FindPreset(presets, "missing"); ok {
		t.Error("FindPreset(missing) found something")
	}
}

func TestDecodePresetsErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"syntax", "[brushes.x\nradius=", ErrPresetConfig},
		{"unknown key", "[brushes.x]\nradius = 2.0\nsize = 3.0\n", ErrPresetConfig},
		{"unknown kind", "[brushes.x]\nkind = \"square\"\n", ErrPresetConfig},
		{"zero spacing", "[brushes.x]\nspacing = 0.0\n", ErrInvalidBrush},
		{"negative radius", "[brushes.x]\nradius = -4.0\n", ErrInvalidBrush},
		{"bad color", "[brushes.x]\ncolor = \"#zz\"\n", ErrPresetConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePresets(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodePresets() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brushes.toml")
	if err := os.WriteFile(path, []byte(samplePresets), 0o600); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets() error = %v", err)
	}
	if len(presets) != 2 {
		t.Errorf("len(presets) = %d, want 2", len(presets))
	}

	if _, err := LoadPresets(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, ErrPresetConfig) {
		t.Errorf("LoadPresets(missing) error = %v, want ErrPresetConfig", err)
	}
}

func TestEmptyPresets(t *testing.T) {
	presets, err := DecodePresets(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodePresets(\"\") error = %v", err)
	}
	if len(presets) != 0 {
		t.Errorf("len(presets) = %d, want 0", len(presets))
	}
}

func TestSelectPreset(t *testing.T) {
	presets, err := DecodePresets(strings.NewReader(samplePresets))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		presets []Preset
		pick    string
		want    string
		wantErr error
	}{
		{"empty name picks first", presets, "", "airbrush", nil},
		{"by name", presets, "pencil", "pencil", nil},
		{"unknown name", presets, "chalk", "", ErrPresetNotFound},
		{"no presets", nil, "", "", ErrPresetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := SelectPreset(tt.presets, tt.pick)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("SelectPreset(%q) error = %v, want %v", tt.pick, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectPreset(%q) unexpected error = %v", tt.pick, err)
			}
			if p.Name != tt.want {
				t.Errorf("SelectPreset(%q) = %q, want %q", tt.pick, p.Name, tt.want)
			}
		})
	}
}
