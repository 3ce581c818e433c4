// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat      = errors.New("unknown audio format")
	ErrMismatchedChannels = errors.New("channels must have the same length")
	ErrNoChannels         = errors.New("buffer needs at least one channel")
)
