// SPDX-License-Identifier: EPL-2.0

// Package spectrum turns a block of mono PCM into the bins drawn by the
// visualiser.
//
// The forward transform is a complex FFT from gonum.org/v1/gonum/dsp/fourier
// with no windowing. Each bin is then scaled into a display amplitude with
// Normalize:
//
//	amp[i] = real(coeffs[i]) / (n >> 1) / max
//
// where n is the transform length and max the full-scale value of the source
// sample format. Only the real part is kept; it is a signed value, not a
// magnitude.
//
// All functions here work on caller-owned buffers and do not allocate, so
// they can run inside the audio callback.
package spectrum
