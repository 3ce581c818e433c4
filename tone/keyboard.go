// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ik5/padbx/graph"
)

// DefaultHold is how long a played note sounds before it is released on
// its own.
const DefaultHold = 400 * time.Millisecond

// Keyboard plays one oscillator per MIDI note.
type Keyboard struct {
	dev  graph.Device
	hold time.Duration
	log  *slog.Logger

	mu   sync.Mutex
	wave Wave
	held map[int]*Osc
}

type Option func(*Keyboard)

func WithLogger(l *slog.Logger) Option {
	return func(k *Keyboard) { k.log = l }
}

// WithHold sets the automatic release delay. Zero keeps notes until
// Release.
func WithHold(d time.Duration) Option {
	return func(k *Keyboard) { k.hold = d }
}

func WithWave(w Wave) Option {
	return func(k *Keyboard) { k.wave = w }
}

func NewKeyboard(dev graph.Device, opts ...Option) *Keyboard {
	k := &Keyboard{
		dev:  dev,
		hold: DefaultHold,
		log:  slog.Default(),
		wave: Triangle,
		held: make(map[int]*Osc),
	}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

func (k *Keyboard) SetWave(w Wave) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.wave = w
}

func (k *Keyboard) Wave() Wave {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.wave
}

// Play starts note, releasing a previous press of the same note.
func (k *Keyboard) Play(ctx context.Context, note int) error {
	if k.dev.State() != graph.Running {
		if err := k.dev.Resume(ctx); err != nil {
			return fmt.Errorf("resume audio device: %w", err)
		}
	}

	k.mu.Lock()
	if prev, ok := k.held[note]; ok {
		prev.Release()
	}
	wave := k.wave
	osc := NewOsc(FreqFromMIDI(note), wave, k.dev.SampleRate())
	k.held[note] = osc
	k.dev.Destination().Connect(osc, func() { k.forget(note, osc) })
	k.mu.Unlock()

	if k.hold > 0 {
		time.AfterFunc(k.hold, osc.Release)
	}
	k.log.Debug("note on", "note", note, "freq", FreqFromMIDI(note), "wave", wave)

	return nil
}

func (k *Keyboard) forget(note int, osc *Osc) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.held[note] == osc {
		delete(k.held, note)
	}
}

// Release fades note out. Releasing a silent note does nothing.
func (k *Keyboard) Release(note int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if osc, ok := k.held[note]; ok {
		osc.Release()
	}
}

// ReleaseAll fades every sounding note out.
func (k *Keyboard) ReleaseAll() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, osc := range k.held {
		osc.Release()
	}
}

// Held returns the sounding notes, ascending.
func (k *Keyboard) Held() []int {
	k.mu.Lock()
	defer k.mu.Unlock()

	notes := make([]int, 0, len(k.held))
	for n := range k.held {
		notes = append(notes, n)
	}
	slices.Sort(notes)

	return notes
}
