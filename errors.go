// SPDX-License-Identifier: EPL-2.0

package audvis

import "errors"

var ErrEmptyAudio = errors.New("file holds no audio payload")
