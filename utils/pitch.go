// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"cmp"
	"math"
)

// SemitonesToRate converts a pitch offset to a playback-rate multiplier:
// 12 semitones doubles the rate, -12 halves it.
func SemitonesToRate(st float64) float64 {
	return math.Pow(2, st/12)
}

// Clamp bounds v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
