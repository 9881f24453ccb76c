// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrCorruptStream     = errors.New("corrupt Ogg Vorbis stream")
	ErrUnsupportedLayout = errors.New("unsupported Ogg Vorbis channel layout")
)
