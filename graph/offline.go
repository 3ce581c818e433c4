// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"context"
	"sync/atomic"
)

// Offline is a Device rendered on demand. It starts suspended, the way an
// output device does before the first user gesture.
type Offline struct {
	state   atomic.Int32
	mixer   *Mixer
	resumes atomic.Int32
}

func NewOffline(sampleRate int) *Offline {
	return &Offline{mixer: NewMixer(sampleRate)}
}

func (d *Offline) SampleRate() int      { return d.mixer.SampleRate() }
func (d *Offline) State() State         { return State(d.state.Load()) }
func (d *Offline) Destination() *Mixer  { return d.mixer }
func (d *Offline) CurrentTime() float64 { return seconds(d.mixer) }

// Resumes counts the transitions from suspended to running.
func (d *Offline) Resumes() int { return int(d.resumes.Load()) }

func (d *Offline) Resume(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if d.state.CompareAndSwap(int32(Suspended), int32(Running)) {
		d.resumes.Add(1)
		return nil
	}
	if d.State() == Closed {
		return ErrDeviceClosed
	}

	return nil
}

func (d *Offline) Suspend() error {
	if d.state.CompareAndSwap(int32(Running), int32(Suspended)) || d.State() == Suspended {
		return nil
	}
	return ErrDeviceClosed
}

func (d *Offline) Close() error {
	d.state.Store(int32(Closed))
	return nil
}

// Render pulls frames stereo frames from the destination.
func (d *Offline) Render(frames int) ([]float32, error) {
	switch d.State() {
	case Suspended:
		return nil, ErrDeviceSuspended
	case Closed:
		return nil, ErrDeviceClosed
	}

	out := make([]float32, frames*2)
	if err := d.mixer.Render(out); err != nil {
		return nil, err
	}

	return out, nil
}

func seconds(m *Mixer) float64 {
	if m.SampleRate() <= 0 {
		return 0
	}
	return float64(m.Frames()) / float64(m.SampleRate())
}
