// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package device

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// otoDevice plays through the sound card. oto pulls bytes from the feeder
// on its own goroutine.
type otoDevice struct {
	ctx    *oto.Context
	player *oto.Player
	logger *slog.Logger

	mu      sync.Mutex
	started bool
	paused  bool
	closed  bool
}

func openOto(spec Spec, cb Callback, opts Options) (Device, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   spec.SampleRate,
		ChannelCount: spec.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   spec.Period(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	<-ready

	d := &otoDevice{
		ctx:    ctx,
		logger: opts.logger(),
	}
	d.player = ctx.NewPlayer(newFeeder(spec, cb))

	d.logger.Debug("oto device opened",
		slog.Int("sample_rate", spec.SampleRate),
		slog.Int("channels", spec.Channels),
		slog.Int("block_frames", spec.BlockFrames),
	)

	return d, nil
}

func (d *otoDevice) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}

	if !d.started {
		d.player.Play()
		d.started = true
	}

	return nil
}

func (d *otoDevice) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started && !d.closed && !d.paused {
		d.player.Pause()
		d.paused = true
	}
}

func (d *otoDevice) Resume() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started && !d.closed && d.paused {
		d.player.Play()
		d.paused = false
	}
}

func (d *otoDevice) Paused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

func (d *otoDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	if err := d.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
