// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// AlphaOver composites the straight-alpha pixel src over dst.
//
//	out.rgb = src.rgb*Sa + dst.rgb*(1-Sa)
//	out.a   = Sa + dst.a*(1-Sa)
//
// Both slices must hold at least 4 bytes.
func AlphaOver(dst, src []byte) {
	_ = dst[3]
	_ = src[3]
	sa := Unit(src[3])
	if sa == 0 {
		return
	}
	inv := 1 - sa
	dst[0] = Quantize(Unit(src[0])*sa + Unit(dst[0])*inv)
	dst[1] = Quantize(Unit(src[1])*sa + Unit(dst[1])*inv)
	dst[2] = Quantize(Unit(src[2])*sa + Unit(dst[2])*inv)
	dst[3] = Quantize(sa + Unit(dst[3])*inv)
}

// Merge composites every pixel of src over the matching pixel of dst.
//
// Buffers are flat RGBA; when their lengths differ only the common prefix
// of whole pixels is merged.
func Merge(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		AlphaOver(dst[i:i+4], src[i:i+4])
	}
}

// Clear resets every byte of buf to zero (fully transparent black).
func Clear(buf []byte) {
	clear(buf)
}
