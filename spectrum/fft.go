// SPDX-License-Identifier: EPL-2.0

package spectrum

import "gonum.org/v1/gonum/dsp/fourier"

// Transform is a fixed-length forward spectral transform.
type Transform interface {
	// Len returns the number of input and output points.
	Len() int
	// Forward transforms src into dst and returns dst. Both must hold Len()
	// values.
	Forward(dst, src []complex128) []complex128
}

// FFT is a forward complex FFT of a fixed length.
type FFT struct {
	plan *fourier.CmplxFFT
	n    int
}

// NewFFT prepares a transform of n points. Work buffers are allocated here,
// not per call.
func NewFFT(n int) *FFT {
	return &FFT{
		plan: fourier.NewCmplxFFT(n),
		n:    n,
	}
}

func (f *FFT) Len() int { return f.n }

func (f *FFT) Forward(dst, src []complex128) []complex128 {
	return f.plan.Coefficients(dst, src)
}
