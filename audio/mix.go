// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audvis/utils"

// MaxVolume is the mixing volume that adds src at unity gain.
const MaxVolume = 128

// Mix adds src into dst at the given volume (0..MaxVolume), saturating at
// the int16 range. With a silent dst and MaxVolume this is a saturating copy.
// Only min(len(dst), len(src)) samples are mixed.
func Mix(dst, src []int16, volume int) {
	if volume <= 0 {
		return
	}
	if volume > MaxVolume {
		volume = MaxVolume
	}

	n := min(len(dst), len(src))
	for i := range n {
		s := int32(src[i])
		if volume != MaxVolume {
			s = s * int32(volume) / MaxVolume
		}
		dst[i] = utils.ClampInt32ToInt16(int32(dst[i]) + s)
	}
}

// Interleave rescales the first n samples of f into dst as left/right
// pairs. dst must hold at least 2*n values.
func Interleave(dst []int16, f *Frame, n int) error {
	if len(dst) < n*OutputChannels {
		return ErrInvalidDstSize
	}

	for i := range n {
		dst[2*i] = Rescale(f.Left[i], f.Format)
		dst[2*i+1] = Rescale(f.Right[i], f.Format)
	}

	return nil
}
