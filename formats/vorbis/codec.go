// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audvis/audio"
	"github.com/ik5/audvis/utils"
	"github.com/jfreymuth/oggvorbis"
)

// BlockFrames is the number of sample frames DecodeFrame produces. Vorbis
// packets vary in size, so the stream is cut into blocks of the same length
// as an MPEG-1 Layer III frame.
const BlockFrames = 1152

// Magic is the capture pattern every Ogg page starts with.
var Magic = []byte("OggS")

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Codec decodes an Ogg Vorbis payload in fixed blocks.
type Codec struct {
	dec    oggReader
	header audio.Header
	buf    []float32
}

func newCodec(dec oggReader, total int64) (*Codec, error) {
	channels := dec.Channels()
	if channels < 1 || channels > 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, channels)
	}

	return &Codec{
		dec: dec,
		header: audio.Header{
			SampleRate:      dec.SampleRate(),
			Channels:        channels,
			SamplesPerFrame: BlockFrames,
			TotalSamples:    total,
		},
		buf: make([]float32, BlockFrames*channels),
	}, nil
}

func (c *Codec) DecodeHeader() (audio.Header, error) { return c.header, nil }
func (c *Codec) Format() audio.SampleFormat          { return audio.S16 }
func (c *Codec) Close() error                        { return nil }

// DecodeFrame decodes the next block. The last block of a stream may be
// short.
func (c *Codec) DecodeFrame(dst *audio.Frame) error {
	if dst.Cap() < BlockFrames {
		return audio.ErrFrameTooSmall
	}

	got := 0
	for got < len(c.buf) {
		n, err := c.dec.Read(c.buf[got:])
		got += n

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptStream, err)
		}
		if n == 0 {
			break
		}
	}

	ch := c.header.Channels
	frames := got / ch
	if frames == 0 {
		return io.EOF
	}

	for i := range frames {
		l := c.buf[i*ch]
		r := l
		if ch == 2 {
			r = c.buf[i*ch+1]
		}
		dst.Left[i] = int32(utils.Float64ToInt16(float64(l) * audio.Int16Max))
		dst.Right[i] = int32(utils.Float64ToInt16(float64(r) * audio.Int16Max))
	}

	dst.Samples = frames
	dst.SampleRate = c.header.SampleRate
	dst.Format = audio.S16

	return nil
}

type Decoder struct{}

// Open binds a codec to an in-memory Ogg Vorbis file.
func (Decoder) Open(payload []byte) (audio.Codec, error) {
	dec, err := oggvorbis.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}

	var total int64
	if l, ok := any(dec).(interface{ Length() int64 }); ok {
		total = l.Length()
	}

	return newCodec(dec, total)
}
