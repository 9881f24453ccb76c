// SPDX-License-Identifier: EPL-2.0

// Package aiff records played audio to 16-bit PCM AIFF files.
//
// This package uses github.com/go-audio/aiff. It is the AIFF twin of the
// wav package: the headless output device writes to whichever recorder the
// AUDVIS_RECORD file extension selects.
//
//	file, _ := os.Create("session.aiff")
//	rec := aiff.NewRecorder(file, 44100, 2)
//	defer rec.Close()
//
//	rec.Write(block) // interleaved left/right int16
package aiff
