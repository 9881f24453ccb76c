// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth  = 16
	formatPCM = 1
)

// Recorder writes interleaved 16-bit PCM blocks to a WAV file as they are
// played.
type Recorder struct {
	w        io.WriteSeeker
	enc      *wav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	samples  int64
	closed   bool
}

// NewRecorder starts a WAV stream on w. The header sizes are filled in by
// Close.
func NewRecorder(w io.WriteSeeker, sampleRate, channels int) *Recorder {
	return &Recorder{
		w:        w,
		enc:      wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM),
		channels: channels,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
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

	r.samples += int64(len(samples))

	return nil
}

// Frames returns the number of sample frames written so far.
func (r *Recorder) Frames() int64 {
	if r.channels <= 0 {
		return 0
	}
	return r.samples / int64(r.channels)
}

// Close finalises the header and closes the underlying writer if it is an
// io.Closer.
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
