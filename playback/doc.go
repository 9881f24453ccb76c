// SPDX-License-Identifier: EPL-2.0

// Package playback implements the decode pipeline that runs inside the audio
// device callback, and the state it shares with the presentation loop.
//
// Each call to Pipeline.Fill decodes exactly one compressed frame and:
//   - rescales and interleaves it into the device buffer
//   - advances the Clock by the frame duration
//   - transforms the mono mix and publishes the bins to the Snapshot
//
// # Shared State
//
// The callback and the presentation loop run on different goroutines. They
// share a State:
//
//	state := playback.NewState(duration, fft.Len())
//	pipe, err := playback.New(codec, cfg, fft, state)
//
//	// audio goroutine
//	pipe.Fill(out)
//
//	// presentation goroutine
//	now := state.Clock.Current()
//	state.Spectrum.Read(bins)
//
// Clock is a single atomic counter. Snapshot is a lock-free triple buffer:
// the writer always has a buffer of its own to fill, the reader always has
// a complete one to look at, and a third one sits between them.
//
// # Stopping
//
// The first decode error, end of stream included, stops the pipeline for
// good: every later Fill produces silence without touching the codec. The
// error is kept in the State and reported by Err, which returns nil when the
// stream simply ended. Nothing here logs; the callback must not block.
package playback
