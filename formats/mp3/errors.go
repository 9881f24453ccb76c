// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrNoStream     = errors.New("no MPEG audio frame sync found")
	ErrCorruptFrame = errors.New("corrupt MPEG audio frame")
)
