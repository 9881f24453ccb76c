// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

const bitDepth = 16

// Recorder writes interleaved 16-bit PCM blocks to an AIFF file.
type Recorder struct {
	w        io.WriteSeeker
	enc      *aiff.Encoder
	buf      *goaudio.IntBuffer
	channels int
	closed   bool
}

// NewRecorder starts an AIFF stream on w.
func NewRecorder(w io.WriteSeeker, sampleRate, channels int) *Recorder {
	return &Recorder{
		w:        w,
		enc:      aiff.NewEncoder(w, sampleRate, bitDepth, channels),
		channels: channels,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}
}

// Write appends one block of interleaved samples.
func (r *Recorder) Write(samples []int16) error {
	if r.closed {
		return ErrRecorderClosed
	}

	if r.channels <= 0 || len(samples)%r.channels != 0 {
		return ErrInvalidDstSize
	}

	if len(samples) == 0 {
		return nil
	}

	if cap(r.buf.Data) < len(samples) {
		r.buf.Data = make([]int, len(samples))
	}
	r.buf.Data = r.buf.Data[:len(samples)]

	for i, s := range samples {
		r.buf.Data[i] = int(s)
	}

	if err := r.enc.Write(r.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close finalises the chunk sizes and closes w if it is an io.Closer.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if c, ok := r.w.(io.Closer); ok {
		if err := c.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// ReadAIFF16 reads a whole 16-bit PCM AIFF file and returns its sample rate,
// channel count and interleaved samples.
func ReadAIFF16(r io.ReadSeeker) (sampleRate, channels int, samples []int16, err error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, 0, nil, ErrNotAiffFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w", err)
	}

	if dec.BitDepth != bitDepth {
		return 0, 0, nil, ErrOnlyPCM16bitSupported
	}

	samples = make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	return int(dec.SampleRate), int(dec.NumChans), samples, nil
}
