// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"fmt"

	"github.com/ik5/audvis/audio"
	"github.com/ik5/audvis/spectrum"
)

var ErrInvalidConfig = errors.New("invalid stream configuration")

// Pipeline decodes one frame per device callback. All buffers are allocated
// by New; Fill does not allocate.
type Pipeline struct {
	codec audio.Codec
	cfg   audio.StreamConfig
	fft   spectrum.Transform
	state *State

	frame  *audio.Frame
	block  []int16
	mono   []complex128
	coeffs []complex128
	scale  float64
}

// New binds a pipeline to an open codec. cfg gives the frame size and
// format; fft sets the number of spectrum bins and must match the length of
// state.Spectrum.
func New(codec audio.Codec, cfg audio.StreamConfig, fft spectrum.Transform, state *State) (*Pipeline, error) {
	if cfg.SamplesPerFrame <= 0 || cfg.Channels != audio.OutputChannels {
		return nil, fmt.Errorf("%w: %d samples per frame, %d channels",
			ErrInvalidConfig, cfg.SamplesPerFrame, cfg.Channels)
	}

	if fft.Len() <= 0 || fft.Len() != state.Spectrum.Len() {
		return nil, fmt.Errorf("%w: transform of %d points for %d bins",
			ErrInvalidConfig, fft.Len(), state.Spectrum.Len())
	}

	return &Pipeline{
		codec:  codec,
		cfg:    cfg,
		fft:    fft,
		state:  state,
		frame:  audio.NewFrame(cfg.SamplesPerFrame),
		block:  make([]int16, cfg.BlockSamples()),
		mono:   make([]complex128, fft.Len()),
		coeffs: make([]complex128, fft.Len()),
		scale:  float64(cfg.Format.Max()),
	}, nil
}

// Config returns the stream configuration the pipeline was built with.
func (p *Pipeline) Config() audio.StreamConfig { return p.cfg }

// State returns the shared playback state.
func (p *Pipeline) State() *State { return p.state }

// Stopped reports whether a decode error ended the pipeline.
func (p *Pipeline) Stopped() bool { return p.state.Stopped() }

// Err returns the decode error that ended the pipeline, nil at end of
// stream.
func (p *Pipeline) Err() error { return p.state.Err() }

// Fill is the device callback: out receives interleaved stereo int16.
func (p *Pipeline) Fill(out []int16) {
	clear(out)

	if p.state.Stopped() {
		return
	}

	if err := p.codec.DecodeFrame(p.frame); err != nil {
		p.state.Stop(err)
		return
	}

	n := min(p.frame.Samples, len(out)/audio.OutputChannels, len(p.block)/audio.OutputChannels)

	clear(p.block)
	// block holds at least n stereo samples
	_ = audio.Interleave(p.block, p.frame, n)
	audio.Mix(out, p.block[:n*audio.OutputChannels], audio.MaxVolume)

	rate := p.frame.SampleRate
	if rate <= 0 {
		rate = p.cfg.SampleRate
	}
	p.state.Clock.Advance(FrameDuration(p.frame.Samples, rate))

	audio.FoldMono(p.mono, p.frame)
	p.fft.Forward(p.coeffs, p.mono)
	spectrum.Normalize(p.state.Spectrum.WriteBuffer(), p.coeffs, p.scale)
	p.state.Spectrum.Publish()
}
