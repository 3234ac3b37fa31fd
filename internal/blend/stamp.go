// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend implements the per-pixel compositing math used by brushy.
//
// All operations work on straight (non-premultiplied) RGBA bytes laid out as
// 4 consecutive bytes per pixel. Math is done in normalized float space and
// re-quantized with [Quantize].
//
// Three operators are provided:
//   - SourceOver: stamp-into-layer painting, result = D + S*(1-D) per channel
//   - Erode: stamp-into-layer erasing, only alpha is reduced
//   - AlphaOver: layer-into-frame merging, classic "over" with straight alpha
package blend

// SourceOver paints one stamp pixel into dst.
//
// dst must hold at least 4 bytes (one RGBA pixel). Each channel, alpha
// included, becomes current + new*(1-current), so painting never lowers a
// channel and a fully saturated source is idempotent.
func SourceOver(dst []byte, r, g, b, a byte) {
	_ = dst[3]
	dst[0] = sourceOverChannel(dst[0], r)
	dst[1] = sourceOverChannel(dst[1], g)
	dst[2] = sourceOverChannel(dst[2], b)
	dst[3] = sourceOverChannel(dst[3], a)
}

func sourceOverChannel(current, src byte) byte {
	c := Unit(current)
	return Quantize(c + Unit(src)*(1-c))
}

// Erode removes transparency from one pixel of dst.
//
// Only the alpha channel changes: alpha becomes alpha*(1-strength). Color
// channels are left intact so erased areas can be painted again without
// picking up stale color. strength is clamped to [0, 1].
func Erode(dst []byte, strength float64) {
	_ = dst[3]
	if strength <= 0 {
		return
	}
	if strength > 1 {
		strength = 1
	}
	dst[3] = Quantize(Unit(dst[3]) * (1 - strength))
}
