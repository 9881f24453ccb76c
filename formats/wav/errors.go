// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrInvalidDstSize        = errors.New("sample count must be multiple of channels")
	ErrRecorderClosed        = errors.New("recorder closed")
)
