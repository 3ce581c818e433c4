// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const silentTick = 10 * time.Millisecond

// Silent is a device without output. While running it renders and
// discards the mix in real time, so voices still start and end.
type Silent struct {
	mixer *Mixer
	state atomic.Int32

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewSilent(sampleRate int) *Silent {
	return &Silent{mixer: NewMixer(sampleRate)}
}

func (d *Silent) SampleRate() int      { return d.mixer.SampleRate() }
func (d *Silent) State() State         { return State(d.state.Load()) }
func (d *Silent) Destination() *Mixer  { return d.mixer }
func (d *Silent) CurrentTime() float64 { return seconds(d.mixer) }

func (d *Silent) run(stop, done chan struct{}) {
	defer close(done)

	frames := max(1, d.mixer.SampleRate()*int(silentTick)/int(time.Second))
	buf := make([]float32, frames*2)
	ticker := time.NewTicker(silentTick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_ = d.mixer.Render(buf)
		}
	}
}

func (d *Silent) Resume(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.State() {
	case Running:
		return nil
	case Closed:
		return ErrDeviceClosed
	}

	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.run(d.stop, d.done)
	d.state.Store(int32(Running))

	return nil
}

func (d *Silent) halt() {
	if d.stop != nil {
		close(d.stop)
		<-d.done
		d.stop, d.done = nil, nil
	}
}

func (d *Silent) Suspend() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.State() == Closed {
		return ErrDeviceClosed
	}
	d.halt()
	d.state.Store(int32(Suspended))

	return nil
}

func (d *Silent) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.halt()
	d.state.Store(int32(Closed))

	return nil
}
