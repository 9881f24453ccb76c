package audio

// FoldMono writes the mono mix of f into dst as the real part of each entry,
// with a zero imaginary part. Each value is the pairwise average (l+r)>>1.
// Entries past f.Samples are cleared, so dst always holds exactly one
// transform input. Returns the number of folded samples.
func FoldMono(dst []complex128, f *Frame) int {
    n := min(len(dst), f.Samples, f.Cap())

    for i := range n {
        mono := (int64(f.Left[i]) + int64(f.Right[i])) >> 1
        dst[i] = complex(float64(mono), 0)
    }

    // Clear the tail left over from a longer previous frame
    for i := n; i < len(dst); i++ {
        dst[i] = 0
    }

    return n
}
