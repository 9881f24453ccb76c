// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 truncates x toward zero and saturates it to the int16 range.
// x is already expressed in int16 units.
func Float64ToInt16(x float64) int16 {
	// Clamp
	if x >= math.MaxInt16 {
		return math.MaxInt16
	} else if x <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}

// ClampInt32ToInt16 saturates v to the int16 range.
func ClampInt32ToInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
