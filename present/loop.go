// SPDX-License-Identifier: EPL-2.0

package present

import (
	"context"
	"log/slog"
	"time"

	"github.com/ik5/audvis/playback"
)

// DefaultFPS is the refresh rate of the presentation loop.
const DefaultFPS = 30

// BudgetFor returns the frame budget of a loop running at fps frames per
// second.
func BudgetFor(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Player is the part of the output device the loop controls.
type Player interface {
	Pause()
	Resume()
	Paused() bool
}

// Loop is the presentation loop.
type Loop struct {
	Budget  time.Duration
	State   *playback.State
	Player  Player
	Input   Input
	Surface Surface
	Logger  *slog.Logger

	// now and sleep are replaced in tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// Run draws frames until the user quits, ctx is done, or playback is
// finished. It returns ctx.Err() when cancelled and the surface error when
// drawing fails.
func (l *Loop) Run(ctx context.Context) error {
	now := l.now
	if now == nil {
		now = time.Now
	}

	sleep := l.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bins := make([]float64, l.State.Spectrum.Len())
	frames := 0
	last := now()

	for !l.State.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if l.handleInput(logger) {
			logger.Debug("quit requested", slog.Int("frames", frames))
			return nil
		}

		l.State.Spectrum.Read(bins)

		err := l.Surface.Draw(Frame{
			Now:      l.State.Clock.Current(),
			Duration: l.State.Clock.Duration(),
			Paused:   l.Player != nil && l.Player.Paused(),
			Bins:     bins,
		})
		if err != nil {
			return err
		}
		frames++

		if wait := l.Budget - now().Sub(last); wait > 0 {
			sleep(ctx, wait)
		}
		last = now()
	}

	logger.Debug("playback finished",
		slog.Int("frames", frames),
		slog.Uint64("position_ms", uint64(l.State.Clock.Current())),
	)

	return nil
}

// handleInput drains pending events and reports whether to quit.
func (l *Loop) handleInput(logger *slog.Logger) bool {
	if l.Input == nil {
		return false
	}

	for {
		ev, ok := l.Input.Poll()
		if !ok {
			return false
		}

		switch ev {
		case EventQuit:
			return true
		case EventTogglePause:
			if l.Player == nil {
				continue
			}
			if l.Player.Paused() {
				l.Player.Resume()
			} else {
				l.Player.Pause()
			}
			logger.Debug("pause toggled", slog.Bool("paused", l.Player.Paused()))
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
