// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestFoldMono_Average(t *testing.T) {
	t.Parallel()

	f := NewFrame(8)
	f.Samples = 3
	f.Left[0], f.Right[0] = 100, 200
	f.Left[1], f.Right[1] = -100, -201
	f.Left[2], f.Right[2] = Int24Max, Int24Max

	dst := make([]complex128, 4)
	n := FoldMono(dst, f)

	if n != 3 {
		t.Errorf("FoldMono() n = %d, want 3", n)
	}

	// (l+r)>>1 rounds toward negative infinity
	want := []complex128{150, -151, Int24Max, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestFoldMono_ClearsTail(t *testing.T) {
	t.Parallel()

	dst := []complex128{1, 2, 3, 4}

	f := NewFrame(4)
	f.Samples = 1
	f.Left[0], f.Right[0] = 10, 10

	FoldMono(dst, f)

	if dst[0] != 10 {
		t.Errorf("dst[0] = %v, want 10", dst[0])
	}
	for i := 1; i < len(dst); i++ {
		if dst[i] != 0 {
			t.Errorf("dst[%d] = %v, want 0", i, dst[i])
		}
	}
}

func TestFoldMono_ShortDst(t *testing.T) {
	t.Parallel()

	f := NewFrame(8)
	f.Samples = 8

	if n := FoldMono(make([]complex128, 2), f); n != 2 {
		t.Errorf("FoldMono() n = %d, want 2", n)
	}
}

// BenchmarkFoldMono_ZeroAllocs verifies no allocations after initialization
func BenchmarkFoldMono_ZeroAllocs(b *testing.B) {
	f := NewFrame(1152)
	f.Samples = 1152
	dst := make([]complex128, 1152)

	allocs := testing.AllocsPerRun(100, func() {
		FoldMono(dst, f)
	})

	if allocs > 0 {
		b.Errorf("FoldMono() allocated %v times, want 0", allocs)
	}
}
