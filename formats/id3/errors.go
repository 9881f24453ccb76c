// SPDX-License-Identifier: EPL-2.0

package id3

import "errors"

var (
	ErrTruncatedHeader = errors.New("truncated ID3 header")
	ErrTruncatedFrame  = errors.New("truncated ID3 frame")
)
