// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"sync"
)

// Header describes a compressed stream, as read from one frame header.
type Header struct {
	BitRate         int // bits per second
	SampleRate      int // Hz
	Channels        int // 1=mono, 2=stereo
	SamplesPerFrame int // PCM samples per channel in one frame

	// TotalSamples is the stream length in samples per channel, when the
	// container records it. 0 means unknown.
	TotalSamples int64
}

// Frame is the PCM output of one decoded frame, one slice per channel.
// Left and Right are allocated once with NewFrame and reused for every
// frame; only the first Samples entries are valid.
type Frame struct {
	Left       []int32
	Right      []int32
	Samples    int
	SampleRate int
	Format     SampleFormat
}

// NewFrame allocates a frame able to hold capacity samples per channel.
func NewFrame(capacity int) *Frame {
	return &Frame{
		Left:  make([]int32, capacity),
		Right: make([]int32, capacity),
	}
}

// Cap returns the number of samples per channel the frame can hold.
func (f *Frame) Cap() int { return min(len(f.Left), len(f.Right)) }

type Codec interface {
    // DecodeHeader reads the first frame header without consuming the stream.
    DecodeHeader() (Header, error)
    // DecodeFrame decodes exactly one frame into dst.
    // Returns io.EOF once the stream is exhausted; any other error means the
    // frame could not be decoded.
    DecodeFrame(dst *Frame) error
    // Format of the samples DecodeFrame produces.
    Format() SampleFormat

    // Close releases any resources.
    Close() error
}

// Opener constructs a Codec bound to a compressed payload.
type Opener interface {
    Open(payload []byte) (Codec, error)
}

// Registry for codecs by format key (e.g., "mp3").
type Registry struct {
    codecs map[string]Opener

    mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Opener),
		mtx: &sync.Mutex{},
    }
}

func (r *Registry) Register(format string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = o
}

func (r *Registry) Get(format string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

    o, ok := r.codecs[format]
    return o, ok
}

// Open looks up format and opens payload with it.
func (r *Registry) Open(format string, payload []byte) (Codec, error) {
	o, ok := r.Get(format)
	if !ok {
		return nil, ErrUnknownFormat
	}

	return o.Open(payload)
}
