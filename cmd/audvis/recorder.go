// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audvis/device"
	"github.com/ik5/audvis/formats/aiff"
	"github.com/ik5/audvis/formats/wav"
)

// openRecorder creates path and returns a sink writing 16-bit PCM to it.
// .aif and .aiff paths get an AIFF file, anything else WAV.
func openRecorder(path string, sampleRate, channels int) (device.Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recording: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff":
		return aiff.NewRecorder(f, sampleRate, channels), nil
	default:
		return wav.NewRecorder(f, sampleRate, channels), nil
	}
}
