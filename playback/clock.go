// SPDX-License-Identifier: EPL-2.0

package playback

import "sync/atomic"

// Clock is the playback position in milliseconds. It is written by the
// audio callback and read by the presentation loop.
type Clock struct {
	current  atomic.Uint32
	duration atomic.Uint32
}

// NewClock returns a clock at zero for a track of duration milliseconds.
func NewClock(duration uint32) *Clock {
	c := &Clock{}
	c.duration.Store(duration)
	return c
}

// Advance moves the clock forward by ms and returns the new position.
func (c *Clock) Advance(ms uint32) uint32 { return c.current.Add(ms) }

func (c *Clock) Current() uint32  { return c.current.Load() }
func (c *Clock) Duration() uint32 { return c.duration.Load() }

// Done reports whether the position has reached the duration.
func (c *Clock) Done() bool { return c.Current() >= c.Duration() }

// FrameDuration returns the length in milliseconds of a frame of samples
// samples at rate Hz, truncated.
func FrameDuration(samples, rate int) uint32 {
	if samples <= 0 || rate <= 0 {
		return 0
	}

	return uint32(samples * 1000 / rate)
}
