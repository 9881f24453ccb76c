// SPDX-License-Identifier: EPL-2.0

package playback

import "github.com/ik5/audvis/audio"

// EstimateDuration returns the play time in milliseconds of audioLen bytes
// of a constant bit rate stream described by h:
//
//	audioLen / (bitrate*spf/8/rate) * (spf/rate*1000)
//
// that is, the number of frames times the duration of one frame. The
// estimate is wrong for variable bit rate streams. When h carries the total
// sample count the exact length is returned instead. It returns 0 when h
// does not describe a stream.
func EstimateDuration(audioLen int64, h audio.Header) uint32 {
	if h.TotalSamples > 0 && h.SampleRate > 0 {
		return uint32(h.TotalSamples * 1000 / int64(h.SampleRate))
	}

	if audioLen <= 0 || h.BitRate <= 0 || h.SampleRate <= 0 || h.SamplesPerFrame <= 0 {
		return 0
	}

	spf := float64(h.SamplesPerFrame)
	rate := float64(h.SampleRate)

	frameBytes := float64(h.BitRate) * spf / 8 / rate
	frameMs := spf / rate * 1000

	return uint32(float64(audioLen) / frameBytes * frameMs)
}
