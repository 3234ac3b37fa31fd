// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import "math"

// Unit maps a byte channel to the normalized range [0, 1].
func Unit(v byte) float64 {
	return float64(v) / 255
}

// Quantize maps a normalized value back to a byte channel.
//
// The value is rounded to the nearest integer step and clamped to [0, 255],
// so out-of-range and NaN inputs never wrap.
func Quantize(f float64) byte {
	v := math.Round(f * 255)
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
