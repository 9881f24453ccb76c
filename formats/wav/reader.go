// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// Recording is the content of a 16-bit PCM WAV file.
type Recording struct {
	SampleRate int
	Channels   int
	Samples    []int16 // interleaved
}

// Frames returns the number of sample frames.
func (r *Recording) Frames() int {
	if r.Channels == 0 {
		return 0
	}
	return len(r.Samples) / r.Channels
}

// ReadWAV16 reads a whole 16-bit PCM WAV file, such as one written by a
// Recorder.
func ReadWAV16(r io.ReadSeeker) (*Recording, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.BitDepth != bitDepth {
		return nil, ErrOnlyPCM16bitSupported
	}

	rec := &Recording{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Samples:    make([]int16, len(buf.Data)),
	}

	for i, v := range buf.Data {
		rec.Samples[i] = int16(v)
	}

	return rec, nil
}
