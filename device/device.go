// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	BackendOto      = "oto"
	BackendHeadless = "headless"
)

// Spec is the output format: signed 16-bit little-endian interleaved PCM.
type Spec struct {
	SampleRate  int // Hz
	Channels    int
	BlockFrames int // sample frames per callback
}

// BlockSamples returns the number of int16 values in one block.
func (s Spec) BlockSamples() int { return s.BlockFrames * s.Channels }

// BlockBytes returns the size in bytes of one block.
func (s Spec) BlockBytes() int { return s.BlockSamples() * 2 }

// Period returns how long one block plays.
func (s Spec) Period() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(s.BlockFrames) * time.Second / time.Duration(s.SampleRate)
}

func (s Spec) validate() error {
	if s.SampleRate <= 0 || s.Channels <= 0 || s.BlockFrames <= 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidSpec, s)
	}
	return nil
}

// Callback fills out with one block of interleaved samples.
type Callback func(out []int16)

// Device is an opened audio output.
type Device interface {
	// Start begins calling the callback.
	Start() error
	// Pause stops output; the callback is not called while paused.
	Pause()
	// Resume restarts output after Pause.
	Resume()
	// Paused reports whether output is paused.
	Paused() bool
	// Close stops output and releases the device.
	Close() error
}

// Sink receives every block the headless backend plays.
type Sink interface {
	Write(samples []int16) error
	Close() error
}

// Options are optional device settings.
type Options struct {
	// Sink is used by the headless backend only. It is closed with the
	// device.
	Sink Sink
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Open creates a device on the named backend. The device does not call cb
// before Start.
func Open(backend string, spec Spec, cb Callback, opts Options) (Device, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	switch backend {
	case BackendOto:
		return openOto(spec, cb, opts)
	case BackendHeadless:
		return NewHeadless(spec, cb, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
