// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrUnknownBackend     = errors.New("unknown audio backend")
	ErrBackendUnavailable = errors.New("audio backend unavailable")
	ErrInvalidSpec        = errors.New("invalid device spec")
	ErrClosed             = errors.New("device closed")
)
