// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported indicates only 16-bit PCM is supported
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrInvalidDstSize indicates a block that is not whole sample frames
	ErrInvalidDstSize = errors.New("sample count must be multiple of channels")

	// ErrRecorderClosed indicates a write after Close
	ErrRecorderClosed = errors.New("recorder closed")
)
