// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 scales x from [-1, 1] to signed 16-bit PCM, clamping
// out-of-range input. Positive full scale maps to 32767.
func Float32ToInt16(x float32) int16 {
	return int16(Clamp(x, -1, 1) * 32767.0)
}
