// SPDX-License-Identifier: EPL-2.0

package device

import "encoding/binary"

// feeder turns the pull reads of a player into whole-block callbacks. The
// callback runs only once the previous block has been fully read, so every
// block is played exactly once whatever the read sizes are.
type feeder struct {
	cb      Callback
	block   []int16
	raw     []byte
	pending []byte
}

func newFeeder(spec Spec, cb Callback) *feeder {
	return &feeder{
		cb:    cb,
		block: make([]int16, spec.BlockSamples()),
		raw:   make([]byte, spec.BlockBytes()),
	}
}

// Read fills p with S16LE bytes. It never returns an error; the player
// stops reading when it is paused or closed.
func (f *feeder) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(f.pending) == 0 {
			f.next()
		}

		c := copy(p[n:], f.pending)
		f.pending = f.pending[c:]
		n += c
	}

	return n, nil
}

func (f *feeder) next() {
	f.cb(f.block)

	for i, s := range f.block {
		binary.LittleEndian.PutUint16(f.raw[2*i:], uint16(s))
	}
	f.pending = f.raw
}
