// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"math"
	"testing"
)

func TestFFT_Constant(t *testing.T) {
	t.Parallel()

	const n = 64

	fft := NewFFT(n)
	if fft.Len() != n {
		t.Fatalf("Len() = %d, want %d", fft.Len(), n)
	}

	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(1000, 0)
	}

	out := fft.Forward(make([]complex128, n), src)

	if got := real(out[0]); math.Abs(got-1000*n) > 1e-6 {
		t.Errorf("DC = %v, want %v", got, 1000*n)
	}

	for i := 1; i < n; i++ {
		if math.Abs(real(out[i])) > 1e-6 || math.Abs(imag(out[i])) > 1e-6 {
			t.Errorf("bin %d = %v, want 0", i, out[i])
		}
	}
}

func TestFFT_Cosine(t *testing.T) {
	t.Parallel()

	const (
		n   = 128
		bin = 5
	)

	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(math.Cos(2*math.Pi*bin*float64(i)/n), 0)
	}

	out := NewFFT(n).Forward(make([]complex128, n), src)

	// A unit cosine puts n/2 into the bin and its mirror.
	for _, k := range []int{bin, n - bin} {
		if math.Abs(real(out[k])-n/2) > 1e-9 {
			t.Errorf("real(out[%d]) = %v, want %v", k, real(out[k]), n/2)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	coeffs := []complex128{complex(64, 3), complex(-32, 0), 0, complex(16, -9)}
	dst := make([]float64, 4)

	n := Normalize(dst, coeffs, 16)
	if n != 4 {
		t.Fatalf("Normalize() = %d, want 4", n)
	}

	// n>>1 = 2, max = 16
	want := []float64{2, -1, 0, 0.5}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestNormalize_FullScaleCosine(t *testing.T) {
	t.Parallel()

	const (
		n   = 1152
		bin = 24
		max = 0x7fff
	)

	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(max*math.Cos(2*math.Pi*bin*float64(i)/n), 0)
	}

	coeffs := NewFFT(n).Forward(make([]complex128, n), src)
	amp := make([]float64, n)
	Normalize(amp, coeffs, max)

	if math.Abs(amp[bin]-1) > 1e-9 {
		t.Errorf("amp[%d] = %v, want 1", bin, amp[bin])
	}

	if math.Abs(amp[bin+1]) > 1e-9 {
		t.Errorf("amp[%d] = %v, want 0", bin+1, amp[bin+1])
	}
}

func TestNormalize_Degenerate(t *testing.T) {
	t.Parallel()

	dst := []float64{7, 7}

	Normalize(dst, []complex128{complex(5, 0)}, 1)
	if dst[0] != 0 || dst[1] != 7 {
		t.Errorf("single coefficient: dst = %v, want [0 7]", dst)
	}

	dst = []float64{7, 7}
	Normalize(dst, []complex128{1, 2}, 0)
	if dst[0] != 0 || dst[1] != 0 {
		t.Errorf("zero max: dst = %v, want [0 0]", dst)
	}
}

func TestResample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  []float64
		dst  int
		want []float64
	}{
		{"copy", []float64{1, 2, 3}, 3, []float64{1, 2, 3}},
		{"pad", []float64{1, 2}, 4, []float64{1, 2, 0, 0}},
		{"halve", []float64{1, 2, 3, 4}, 2, []float64{2, 4}},
		{"keeps negative peak", []float64{0.5, -3, 1, 0}, 2, []float64{-3, 1}},
		{"uneven buckets", []float64{1, 9, 2, 3, 8}, 2, []float64{9, 8}},
		{"empty dst", []float64{1}, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dst := make([]float64, tt.dst)
			for i := range dst {
				dst[i] = -99
			}

			Resample(dst, tt.src)

			for i := range tt.want {
				if dst[i] != tt.want[i] {
					t.Errorf("dst = %v, want %v", dst, tt.want)
					break
				}
			}
		})
	}
}

func TestForward_NoAllocs(t *testing.T) {
	const n = 1152

	fft := NewFFT(n)
	src := make([]complex128, n)
	dst := make([]complex128, n)
	amp := make([]float64, n)

	allocs := testing.AllocsPerRun(50, func() {
		Normalize(amp, fft.Forward(dst, src), 0x7fff)
	})

	if allocs != 0 {
		t.Errorf("Forward()+Normalize() allocs = %v, want 0", allocs)
	}
}

func BenchmarkForward(b *testing.B) {
	const n = 1152

	fft := NewFFT(n)
	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(math.Sin(float64(i)), 0)
	}
	dst := make([]complex128, n)
	amp := make([]float64, n)

	b.ReportAllocs()
	for b.Loop() {
		Normalize(amp, fft.Forward(dst, src), 0x7fff)
	}
}
