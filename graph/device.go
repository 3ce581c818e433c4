// SPDX-License-Identifier: EPL-2.0

package graph

import "context"

// State is the run state of a Device.
type State int32

const (
	Suspended State = iota
	Running
	Closed
)

func (s State) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Running:
		return "running"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Device is an audio output. Resume on a running device is a no-op; on a
// closed one it fails with ErrDeviceClosed.
type Device interface {
	SampleRate() int
	State() State
	Resume(ctx context.Context) error
	// CurrentTime is the number of seconds rendered so far.
	CurrentTime() float64
	Destination() *Mixer
}
