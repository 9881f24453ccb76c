// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"io"
	"sync/atomic"
)

// State is what the audio callback shares with the rest of the player.
type State struct {
	Clock    *Clock
	Spectrum *Snapshot

	err     atomic.Pointer[error]
	stopped atomic.Bool
}

// NewState creates the state for a track of duration milliseconds with bins
// spectrum bins.
func NewState(duration uint32, bins int) *State {
	return &State{
		Clock:    NewClock(duration),
		Spectrum: NewSnapshot(bins),
	}
}

// Stop marks playback as finished. Only the first error is kept.
func (s *State) Stop(err error) {
	if err != nil {
		s.err.CompareAndSwap(nil, &err)
	}
	s.stopped.Store(true)
}

func (s *State) Stopped() bool { return s.stopped.Load() }

// Err returns the error that stopped playback, or nil if it is still running
// or the stream ended normally.
func (s *State) Err() error {
	p := s.err.Load()
	if p == nil || errors.Is(*p, io.EOF) {
		return nil
	}

	return *p
}

// Finished reports whether the clock reached the duration or the pipeline
// stopped.
func (s *State) Finished() bool {
	return s.Stopped() || s.Clock.Done()
}
