// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Preset errors.
var (
	// ErrPresetConfig is returned for malformed preset files.
	ErrPresetConfig = errors.New("brushy: invalid preset config")

	// ErrPresetNotFound is returned by SelectPreset for unknown names.
	ErrPresetNotFound = errors.New("brushy: preset not found")
)

// Preset is a named brush together with the color it paints with.
//
// The brush ID is the preset name, so brushes loaded from one file stay
// distinguishable; the brush kind is implied by its Go type.
type Preset struct {
	Name  string
	Brush Brush
	Color RGB
}

// presetFile mirrors the TOML layout:
//
//	[brushes.pencil]
//	kind = "soft-circle"
//	radius = 2.0
//	hardness = 0.9
//	color = "#202020"
type presetFile struct {
	Brushes map[string]presetEntry `toml:"brushes"`
}

type presetEntry struct {
	Kind     string   `toml:"kind"`
	Radius   *float64 `toml:"radius"`
	Spacing  *float64 `toml:"spacing"`
	Opacity  *float64 `toml:"opacity"`
	Hardness *float64 `toml:"hardness"`
	Color    *RGB     `toml:"color"`
}

// DecodePresets reads brush presets from TOML.
//
// Missing numeric fields take the DefaultBrush values and a missing color
// is White. Each brush gets the preset name as its ID. Unknown keys, unknown kinds and brushes that fail validation are
// errors. Presets are returned sorted by name.
func DecodePresets(r io.Reader) ([]Preset, error) {
	var f presetFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPresetConfig, err)
	}
	return buildPresets(md, f)
}

// LoadPresets reads brush presets from a TOML file.
func LoadPresets(path string) ([]Preset, error) {
	var f presetFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPresetConfig, err)
	}
	return buildPresets(md, f)
}

func buildPresets(md toml.MetaData, f presetFile) ([]Preset, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrPresetConfig, strings.Join(keys, ", "))
	}

	names := make([]string, 0, len(f.Brushes))
	for name := range f.Brushes {
		names = append(names, name)
	}
	sort.Strings(names)

	presets := make([]Preset, 0, len(names))
	for _, name := range names {
		p, err := f.Brushes[name].preset(name)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets = append(presets, p)
	}
	return presets, nil
}

func (e presetEntry) preset(name string) (Preset, error) {
	base := BaseSettings{
		ID:      name,
		Radius:  orDefault(e.Radius, DefaultRadius),
		Spacing: orDefault(e.Spacing, DefaultSpacing),
		Opacity: orDefault(e.Opacity, DefaultOpacity),
	}

	var b Brush
	switch e.Kind {
	case "", DefaultBrushID:
		sc, err := NewSoftCircle(base, orDefault(e.Hardness, DefaultHardness))
		if err != nil {
			return Preset{}, err
		}
		b = sc
	default:
		return Preset{}, fmt.Errorf("%w: unknown brush kind %q", ErrPresetConfig, e.Kind)
	}

	c := White
	if e.Color != nil {
		c = *e.Color
	}
	return Preset{Name: name, Brush: b, Color: c}, nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// SelectPreset picks a preset by name for command-line hosts. An empty name
// selects the first preset in name order.
func SelectPreset(presets []Preset, name string) (Preset, error) {
	if name == "" {
		if len(presets) == 0 {
			return Preset{}, fmt.Errorf("%w: no presets defined", ErrPresetNotFound)
		}
		return presets[0], nil
	}
	p, ok := FindPreset(presets, name)
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return p, nil
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
