// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audvis/audio"
)

// pcmChannels is the channel count of go-mp3 output, which is always
// interleaved 16-bit stereo, mono streams included.
const pcmChannels = 2

// maxSamplesPerFrame is the largest Layer III frame (MPEG-1).
const maxSamplesPerFrame = 1152

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Codec decodes one MP3 frame per DecodeFrame call.
type Codec struct {
	payload []byte
	frames  frameReader
	pcm     mp3Reader
	buf     []byte
}

func newCodec(payload []byte, frames frameReader, pcm mp3Reader) *Codec {
	return &Codec{
		payload: payload,
		frames:  frames,
		pcm:     pcm,
		buf:     make([]byte, maxSamplesPerFrame*pcmChannels*2),
	}
}

func (c *Codec) Format() audio.SampleFormat { return audio.S16 }
func (c *Codec) Close() error               { return nil }

// DecodeHeader reads the first frame header of the payload. The decoding
// position is not affected.
func (c *Codec) DecodeHeader() (audio.Header, error) {
	h, err := newSplitter(bytes.NewReader(c.payload)).next()
	if err != nil {
		return audio.Header{}, classify(err)
	}

	return h, nil
}

// DecodeFrame decodes the next frame into dst. It does not allocate once the
// codec has seen its largest frame.
func (c *Codec) DecodeFrame(dst *audio.Frame) error {
	h, err := c.frames.next()
	if err != nil {
		return classify(err)
	}

	if h.SamplesPerFrame <= 0 {
		return fmt.Errorf("%w: %d samples per frame", ErrCorruptFrame, h.SamplesPerFrame)
	}

	if dst.Cap() < h.SamplesPerFrame {
		return audio.ErrFrameTooSmall
	}

	// go-mp3 returns 16-bit little-endian PCM bytes (stereo interleaved)
	bytesNeeded := h.SamplesPerFrame * pcmChannels * 2
	if cap(c.buf) < bytesNeeded {
		c.buf = make([]byte, bytesNeeded)
	}
	c.buf = c.buf[:bytesNeeded]

	if _, err := io.ReadFull(c.pcm, c.buf); err != nil {
		return classify(err)
	}

	for i := range h.SamplesPerFrame {
		dst.Left[i] = int32(int16(binary.LittleEndian.Uint16(c.buf[4*i:])))
		dst.Right[i] = int32(int16(binary.LittleEndian.Uint16(c.buf[4*i+2:])))
	}

	dst.Samples = h.SamplesPerFrame
	dst.SampleRate = h.SampleRate
	dst.Format = audio.S16

	return nil
}

// classify maps decoder errors to io.EOF (exhausted) or ErrCorruptFrame. A
// frame cut short by the end of the payload counts as exhausted.
func classify(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return io.EOF
	}

	return fmt.Errorf("%w: %w", ErrCorruptFrame, err)
}

type Decoder struct{}

// Open binds a codec to an in-memory MP3 payload that starts at a frame
// sync.
func (Decoder) Open(payload []byte) (audio.Codec, error) {
	dec, err := gomp3.NewDecoder(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}

	return newCodec(payload, newSplitter(bytes.NewReader(payload)), dec), nil
}
