// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package graph

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
)

const otoChannels = 2

// Oto plays the destination mix through the system audio output. A
// process may hold only one.
type Oto struct {
	ctx    *oto.Context
	player *oto.Player
	mixer  *Mixer

	state atomic.Int32

	mu      sync.Mutex
	samples []float32
}

// NewOto opens the system output at sampleRate. latency sizes the device
// buffer; zero lets the driver choose.
func NewOto(sampleRate int, latency time.Duration) (*Oto, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: otoChannels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   latency,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	d := &Oto{
		ctx:   ctx,
		mixer: NewMixer(sampleRate),
	}
	// the player stays paused until the first Resume
	d.player = ctx.NewPlayer(d)

	return d, nil
}

func (d *Oto) SampleRate() int      { return d.mixer.SampleRate() }
func (d *Oto) State() State         { return State(d.state.Load()) }
func (d *Oto) Destination() *Mixer  { return d.mixer }
func (d *Oto) CurrentTime() float64 { return seconds(d.mixer) }

// Read feeds the oto player. It renders the mix as float32 little endian.
func (d *Oto) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(p) / (4 * otoChannels) * otoChannels
	if cap(d.samples) < n {
		d.samples = make([]float32, n)
	}
	samples := d.samples[:n]

	if err := d.mixer.Render(samples); err != nil {
		return 0, err
	}
	for i, v := range samples {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}

	return 4 * n, nil
}

func (d *Oto) Resume(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch d.State() {
	case Running:
		return nil
	case Closed:
		return ErrDeviceClosed
	}

	if err := d.ctx.Resume(); err != nil {
		return fmt.Errorf("%w", err)
	}
	if !d.player.IsPlaying() {
		d.player.Play()
	}
	d.state.CompareAndSwap(int32(Suspended), int32(Running))

	return nil
}

func (d *Oto) Suspend() error {
	switch d.State() {
	case Suspended:
		return nil
	case Closed:
		return ErrDeviceClosed
	}

	if err := d.ctx.Suspend(); err != nil {
		return fmt.Errorf("%w", err)
	}
	d.state.CompareAndSwap(int32(Running), int32(Suspended))

	return nil
}

// Close stops playback. The oto context itself lives until the process
// exits.
func (d *Oto) Close() error {
	if State(d.state.Swap(int32(Closed))) == Closed {
		return nil
	}

	if err := d.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
