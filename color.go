// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brushy

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a hex color string cannot be parsed.
var ErrInvalidColor = errors.New("brushy: invalid color")

// RGB is a flat brush color. Brushes supply the alpha.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// NRGBA returns the color with the given straight alpha.
func (c RGB) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// String returns the color as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "RGB" or "RRGGBB", with an optional '#' prefix.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var digits []uint64
	switch len(hex) {
	case 3:
		for i := range 3 {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
			}
			digits = append(digits, v*17)
		}
	case 6:
		for i := 0; i < 6; i += 2 {
			v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
			}
			digits = append(digits, v)
		}
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{uint8(digits[0]), uint8(digits[1]), uint8(digits[2])}, nil
}

// Hex is like ParseHex but returns Black for malformed input.
// Use it for color literals in code.
func Hex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// UnmarshalText implements encoding.TextUnmarshaler so colors can be written
// as hex strings in preset files.
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
