// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audvis/audio"
)

// FakeCodec is a test helper that produces decoded frames without any
// compressed input. It implements audio.Codec.
type FakeCodec struct {
	header   audio.Header
	format   audio.SampleFormat
	frames   int // frames to produce before end of stream
	decoded  int // frames produced so far
	waveform func(frame, sample, channel int) int32

	// SampleCounts, when set, gives the sample count of each frame in turn
	// instead of header.SamplesPerFrame.
	SampleCounts []int
	// Err, when set, is returned instead of io.EOF once the frames run out.
	Err error

	closed bool
}

// NewFakeCodec creates a codec that decodes frames frames of h-shaped PCM.
// waveform generates a sample value for a frame index, sample index and
// channel (0=left, 1=right).
func NewFakeCodec(h audio.Header, format audio.SampleFormat, frames int, waveform func(frame, sample, channel int) int32) *FakeCodec {
	return &FakeCodec{
		header:   h,
		format:   format,
		frames:   frames,
		waveform: waveform,
	}
}

// NewSilentCodec creates a codec that decodes silent frames.
func NewSilentCodec(h audio.Header, frames int) *FakeCodec {
	return NewFakeCodec(h, audio.S16, frames, func(frame, sample, channel int) int32 {
		return 0
	})
}

// NewSineCodec creates a codec that decodes a sine wave at full scale of
// format on both channels.
func NewSineCodec(h audio.Header, format audio.SampleFormat, frames int, frequency float64) *FakeCodec {
	return NewFakeCodec(h, format, frames, func(frame, sample, channel int) int32 {
		n := frame*h.SamplesPerFrame + sample
		t := float64(n) / float64(h.SampleRate)
		return int32(float64(format.Max()) * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewConstantCodec creates a codec whose left and right samples are fixed.
func NewConstantCodec(h audio.Header, format audio.SampleFormat, frames int, left, right int32) *FakeCodec {
	return NewFakeCodec(h, format, frames, func(frame, sample, channel int) int32 {
		if channel == 0 {
			return left
		}
		return right
	})
}

func (c *FakeCodec) DecodeHeader() (audio.Header, error) { return c.header, nil }
func (c *FakeCodec) Format() audio.SampleFormat          { return c.format }

func (c *FakeCodec) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether Close was called.
func (c *FakeCodec) Closed() bool { return c.closed }

// Decoded returns the number of frames decoded so far.
func (c *FakeCodec) Decoded() int { return c.decoded }

// Reset rewinds the codec to its first frame.
func (c *FakeCodec) Reset() {
	c.decoded = 0
}

func (c *FakeCodec) DecodeFrame(dst *audio.Frame) error {
	if c.decoded >= c.frames {
		if c.Err != nil {
			return c.Err
		}
		return io.EOF
	}

	samples := c.header.SamplesPerFrame
	if len(c.SampleCounts) > 0 {
		samples = c.SampleCounts[c.decoded%len(c.SampleCounts)]
	}

	if dst.Cap() < samples {
		return audio.ErrFrameTooSmall
	}

	for i := range samples {
		dst.Left[i] = c.waveform(c.decoded, i, 0)
		dst.Right[i] = c.waveform(c.decoded, i, 1)
	}

	dst.Samples = samples
	dst.SampleRate = c.header.SampleRate
	dst.Format = c.format
	c.decoded++

	return nil
}
