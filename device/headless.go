// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Headless is a device without a sound card. After Start, a ticker calls the
// callback once per block period. Blocks go to the Sink when there is one.
type Headless struct {
	spec   Spec
	cb     Callback
	sink   Sink
	logger *slog.Logger

	block   []int16
	sinkErr error // set on the first failed sink write; recording stops

	paused atomic.Bool
	blocks atomic.Int64

	mu      sync.Mutex
	started bool
	closed  bool
	stop    chan struct{}
	done    chan struct{}
}

// NewHeadless creates a headless device. It is also what Open returns for
// BackendHeadless.
func NewHeadless(spec Spec, cb Callback, opts Options) *Headless {
	return &Headless{
		spec:   spec,
		cb:     cb,
		sink:   opts.Sink,
		logger: opts.logger(),
		block:  make([]int16, spec.BlockSamples()),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (h *Headless) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if h.started {
		return nil
	}
	h.started = true

	go h.run()

	return nil
}

func (h *Headless) run() {
	defer close(h.done)

	ticker := time.NewTicker(h.spec.Period())
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			if !h.paused.Load() {
				h.pump()
			}
		}
	}
}

// Pump plays n blocks right away, ignoring pause. It is meant for tests and
// offline rendering and must not be used on a started device.
func (h *Headless) Pump(n int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	for range n {
		h.pump()
	}

	return h.sinkErr
}

func (h *Headless) pump() {
	h.cb(h.block)
	h.blocks.Add(1)

	if h.sink == nil || h.sinkErr != nil {
		return
	}

	if err := h.sink.Write(h.block); err != nil {
		h.sinkErr = err
		h.logger.Error("recording stopped", slog.Any("error", err))
	}
}

// Blocks returns the number of blocks played so far.
func (h *Headless) Blocks() int64 { return h.blocks.Load() }

func (h *Headless) Pause()       { h.paused.Store(true) }
func (h *Headless) Resume()      { h.paused.Store(false) }
func (h *Headless) Paused() bool { return h.paused.Load() }

// Close stops the ticker and closes the sink.
func (h *Headless) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	started := h.started
	h.mu.Unlock()

	close(h.stop)
	if started {
		<-h.done
	}

	var errs []error
	if h.sinkErr != nil {
		errs = append(errs, fmt.Errorf("recording: %w", h.sinkErr))
	}

	if h.sink != nil {
		if err := h.sink.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing recording: %w", err))
		}
	}

	return errors.Join(errs...)
}
