// SPDX-License-Identifier: EPL-2.0

package playback

import "sync/atomic"

const (
	indexMask = 0b011
	freshBit  = 0b100
)

// Snapshot holds the latest spectrum bins. One goroutine writes and one
// goroutine reads; neither blocks the other and the reader never sees a
// buffer being written.
type Snapshot struct {
	bufs [3][]float64

	// middle buffer index, plus freshBit when it holds bins the reader has
	// not taken yet
	state atomic.Uint32

	write int // owned by the writer
	read  int // owned by the reader
}

// NewSnapshot allocates a snapshot of n bins.
func NewSnapshot(n int) *Snapshot {
	s := &Snapshot{write: 0, read: 2}
	for i := range s.bufs {
		s.bufs[i] = make([]float64, n)
	}
	s.state.Store(1)

	return s
}

// Len returns the number of bins.
func (s *Snapshot) Len() int { return len(s.bufs[0]) }

// WriteBuffer returns the buffer the writer fills before calling Publish.
func (s *Snapshot) WriteBuffer() []float64 { return s.bufs[s.write] }

// Publish makes the write buffer the latest snapshot and hands the writer a
// free buffer.
func (s *Snapshot) Publish() {
	old := s.state.Swap(uint32(s.write) | freshBit)
	s.write = int(old & indexMask)
}

// Latest returns the most recently published bins, and whether they are new
// since the previous call. The slice stays valid until the next call.
func (s *Snapshot) Latest() ([]float64, bool) {
	fresh := s.state.Load()&freshBit != 0
	if fresh {
		old := s.state.Swap(uint32(s.read))
		s.read = int(old & indexMask)
	}

	return s.bufs[s.read], fresh
}

// Read copies the most recently published bins into dst and returns the
// number copied.
func (s *Snapshot) Read(dst []float64) int {
	bins, _ := s.Latest()
	return copy(dst, bins)
}
