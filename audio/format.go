// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audvis/utils"

// Full-scale values of the fixed-point ranges the pipeline converts between.
const (
	Int16Max = 0x7fff
	Int24Max = 0x7fffff
)

// OutputChannels is the channel count of the output device: decoded frames
// are always interleaved as left/right.
const OutputChannels = 2

// SampleFormat describes the signed fixed-point range of decoded samples.
type SampleFormat struct {
	Bits int
}

var (
	S16 = SampleFormat{Bits: 16}
	S24 = SampleFormat{Bits: 24}
)

// Max returns the full-scale positive value of the format.
func (f SampleFormat) Max() int32 {
	if f.Bits <= 0 || f.Bits > 32 {
		return Int16Max
	}
	return int32(uint32(1)<<(f.Bits-1) - 1)
}

// StreamConfig holds the buffer geometry of the pipeline, resolved once from
// the first frame header.
type StreamConfig struct {
	SamplesPerFrame int
	Channels        int // output channels
	SampleRate      int
	Format          SampleFormat // codec sample format
}

// ConfigFor resolves the pipeline geometry for a stream.
func ConfigFor(h Header, f SampleFormat) StreamConfig {
	return StreamConfig{
		SamplesPerFrame: h.SamplesPerFrame,
		Channels:        OutputChannels,
		SampleRate:      h.SampleRate,
		Format:          f,
	}
}

// BlockSamples returns the number of interleaved int16 values in one block.
func (c StreamConfig) BlockSamples() int { return c.SamplesPerFrame * c.Channels }

// Rescale converts a sample in format from to a signed 16-bit sample. The
// ratio is Int16Max / from.Max(), so S24 input is scaled by 0x7fff/0x7fffff
// and S16 input passes through unchanged. Results saturate.
func Rescale(v int32, from SampleFormat) int16 {
	if from.Bits == 16 {
		return int16(utils.ClampInt32ToInt16(v))
	}
	return utils.Float64ToInt16(float64(v) * Int16Max / float64(from.Max()))
}
