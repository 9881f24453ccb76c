// SPDX-License-Identifier: EPL-2.0

package spectrum

import "math"

// Normalize scales the real part of each coefficient into dst:
// real(c) / (len(coeffs) >> 1) / max. Returns the number of values written,
// min(len(dst), len(coeffs)).
func Normalize(dst []float64, coeffs []complex128, max float64) int {
	n := min(len(dst), len(coeffs))

	half := float64(len(coeffs) >> 1)
	if half == 0 || max == 0 {
		clear(dst[:n])
		return n
	}

	for i := range n {
		dst[i] = real(coeffs[i]) / half / max
	}

	return n
}

// Resample reduces src to len(dst) display points. Each point takes the
// value of largest magnitude in its share of src, so narrow peaks survive.
// When dst is at least as long as src, src is copied and the rest of dst is
// cleared.
func Resample(dst, src []float64) {
	if len(dst) == 0 {
		return
	}

	if len(dst) >= len(src) {
		n := copy(dst, src)
		clear(dst[n:])
		return
	}

	for i := range dst {
		lo := i * len(src) / len(dst)
		hi := (i + 1) * len(src) / len(dst)

		peak := src[lo]
		for _, v := range src[lo+1 : hi] {
			if math.Abs(v) > math.Abs(peak) {
				peak = v
			}
		}
		dst[i] = peak
	}
}
