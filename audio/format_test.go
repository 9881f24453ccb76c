// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestSampleFormat_Max(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format SampleFormat
		want   int32
	}{
		{S16, Int16Max},
		{S24, Int24Max},
		{SampleFormat{Bits: 8}, 127},
		{SampleFormat{Bits: 32}, math.MaxInt32},
		{SampleFormat{}, Int16Max},
	}

	for _, tt := range tests {
		if got := tt.format.Max(); got != tt.want {
			t.Errorf("SampleFormat{%d}.Max() = %d, want %d", tt.format.Bits, got, tt.want)
		}
	}
}

func TestRescale_S16PassThrough(t *testing.T) {
	t.Parallel()

	for _, v := range []int32{0, 1, -1, 12345, -12345, math.MaxInt16, math.MinInt16} {
		if got := Rescale(v, S16); int32(got) != v {
			t.Errorf("Rescale(%d, S16) = %d, want %d", v, got, v)
		}
	}
}

func TestRescale_S24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int32
		want  int16
	}{
		{"zero", 0, 0},
		{"full scale", Int24Max, Int16Max},
		{"negative full scale", -Int24Max, -Int16Max},
		{"half scale", Int24Max / 2, 16383},
		// 256 * 0x7fff / 0x7fffff = 0.99998..., truncated
		{"below one step", 256, 0},
		{"one step", 257, 1},
		{"over range saturates", Int24Max * 2, math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Rescale(tt.input, S24); got != tt.want {
				t.Errorf("Rescale(%d, S24) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfigFor(t *testing.T) {
	t.Parallel()

	h := Header{BitRate: 128000, SampleRate: 44100, Channels: 1, SamplesPerFrame: 1152}
	cfg := ConfigFor(h, S16)

	if cfg.Channels != OutputChannels {
		t.Errorf("ConfigFor().Channels = %d, want %d", cfg.Channels, OutputChannels)
	}
	if cfg.SamplesPerFrame != 1152 {
		t.Errorf("ConfigFor().SamplesPerFrame = %d, want 1152", cfg.SamplesPerFrame)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("ConfigFor().SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.BlockSamples() != 2304 {
		t.Errorf("ConfigFor().BlockSamples() = %d, want 2304", cfg.BlockSamples())
	}
}
