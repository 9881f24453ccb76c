// SPDX-License-Identifier: EPL-2.0

// Package present draws the player in a terminal while the audio plays.
//
// Loop is a single cooperative loop: it drains input events, draws one
// frame, then sleeps for what is left of its frame budget. It ends when the
// user quits, the context is cancelled, or the playback clock reaches the
// track duration.
//
//	loop := &present.Loop{
//	    Budget:  present.BudgetFor(30),
//	    State:   state,
//	    Player:  dev,
//	    Input:   input,
//	    Surface: surface,
//	}
//	err := loop.Run(ctx)
//
// TermSurface builds the text lines and the cover thumbnail once and then
// only redraws the time line and the spectrum plot each frame.
//
// Keys: q, Esc or Ctrl-C quit; space pauses and resumes.
package present
