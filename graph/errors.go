// SPDX-License-Identifier: EPL-2.0

package graph

import "errors"

var (
	ErrDeviceClosed    = errors.New("audio device is closed")
	ErrDeviceSuspended = errors.New("audio device is suspended")
	ErrOddFrameBuffer  = errors.New("stereo buffer length must be even")
)
