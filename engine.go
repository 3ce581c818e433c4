// SPDX-License-Identifier: EPL-2.0

package padbx

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ik5/padbx/graph"
	"github.com/ik5/padbx/kit"
	"github.com/ik5/padbx/sequence"
	"github.com/ik5/padbx/slot"
	"github.com/ik5/padbx/tone"
	"github.com/ik5/padbx/voice"
)

// DefaultOctave is the octave of the first piano key.
const DefaultOctave = 4

// Buffers is the sample source of an Engine. *asset.Store implements it.
type Buffers interface {
	voice.Buffers
	Preload(ctx context.Context, ids []int) error
}

// Engine is the sampler: a slot table, the voices playing it, the sample
// catalog and the piano keyboard, all on one device.
type Engine struct {
	dev     graph.Device
	buffers Buffers
	table   *slot.Table
	voices  *voice.Manager
	binder  *voice.Binder
	catalog *kit.Catalog
	keys    *tone.Keyboard
	seq     *sequence.Document
	log     *slog.Logger
	status  func(string)
	octave  int
	wave    tone.Wave

	mu         sync.Mutex
	instrument Instrument
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithStatus receives the status line of every trigger and stop-all.
func WithStatus(fn func(string)) Option {
	return func(e *Engine) { e.status = fn }
}

// WithSequence attaches the sequence document the engine projects and
// steps through.
func WithSequence(d *sequence.Document) Option {
	return func(e *Engine) { e.seq = d }
}

// WithOctave sets the octave of the first piano key.
func WithOctave(o int) Option {
	return func(e *Engine) { e.octave = o }
}

func WithWave(w tone.Wave) Option {
	return func(e *Engine) { e.wave = w }
}

// New builds an engine over dev playing the pads of doc. A nil doc gives
// sixteen empty pads.
func New(dev graph.Device, buffers Buffers, doc *kit.Document, opts ...Option) *Engine {
	if doc == nil {
		doc = &kit.Document{}
	}

	e := &Engine{
		dev:     dev,
		buffers: buffers,
		table:   doc.Table(),
		catalog: kit.NewCatalog(doc),
		log:     slog.Default(),
		status:  func(string) {},
		octave:  DefaultOctave,
		wave:    tone.Triangle,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.voices = voice.NewManager(dev, buffers,
		voice.WithLogger(e.log),
		voice.WithStatus(e.status),
		voice.WithLabeler(func(id int) string { return e.catalog.Label(&id) }),
		voice.WithConfigs(e.table.Get))
	e.binder = voice.NewBinder(e.table, e.voices)
	e.keys = tone.NewKeyboard(dev, tone.WithLogger(e.log), tone.WithWave(e.wave))

	return e
}

// Preload decodes every sample of the catalog.
func (e *Engine) Preload(ctx context.Context) error {
	return e.buffers.Preload(ctx, e.catalog.IDs())
}

func (e *Engine) Device() graph.Device { return e.dev }

// Config returns the current settings of slotID.
func (e *Engine) Config(slotID int) slot.Config { return e.table.Get(slotID) }

// Slots returns the known slot ids, ascending.
func (e *Engine) Slots() []int { return e.table.Slots() }

// Label names the sample assigned to slotID.
func (e *Engine) Label(slotID int) string {
	return e.catalog.Label(e.table.Get(slotID).SampleID)
}

// Trigger plays slotID with its current settings.
func (e *Engine) Trigger(ctx context.Context, slotID int) (voice.Status, error) {
	return e.voices.Trigger(ctx, slotID, e.table.Get(slotID))
}

// Hit plays pad as the current instrument does: the slot sample, or the
// piano key with the same index.
func (e *Engine) Hit(ctx context.Context, pad int) error {
	if e.Instrument() == Piano {
		return e.PlayNote(ctx, tone.KeyNote(pad, e.octave))
	}

	_, err := e.Trigger(ctx, pad)
	return err
}

func (e *Engine) Stop(slotID int) { e.voices.Stop(slotID) }

func (e *Engine) StopAll() { e.voices.StopAll() }

// Playing reports whether slotID has a registered voice.
func (e *Engine) Playing(slotID int) bool { return e.voices.Active(slotID) != nil }

// ActiveSlots returns the slots with a voice, ascending.
func (e *Engine) ActiveSlots() []int { return e.voices.ActiveSlots() }

func (e *Engine) SetVolume(slotID int, v float64) slot.Config {
	return e.binder.SetVolume(slotID, v)
}

func (e *Engine) SetPitch(slotID int, semitones float64) slot.Config {
	return e.binder.SetPitch(slotID, semitones)
}

func (e *Engine) SetPan(slotID int, pan float64) slot.Config {
	return e.binder.SetPan(slotID, pan)
}

// AssignSample sets the sample of slotID; nil empties the slot. The
// playing voice keeps its sample until the next trigger.
func (e *Engine) AssignSample(slotID int, sampleID *int) slot.Config {
	return e.table.Update(slotID, func(c *slot.Config) { c.SampleID = sampleID })
}

// CycleSample moves the sample of slotID delta steps through the catalog.
// It reports false when the catalog is empty.
func (e *Engine) CycleSample(slotID, delta int) (slot.Config, bool) {
	cfg := e.table.Get(slotID)

	next, ok := e.catalog.Cycle(cfg.SampleID, delta)
	if !ok {
		return cfg, false
	}

	return e.AssignSample(slotID, slot.Sample(next)), true
}

// ToggleLoop flips the loop flag and applies it to the playing voice.
func (e *Engine) ToggleLoop(slotID int) slot.Config {
	return e.binder.SetLoop(slotID, !e.table.Get(slotID).Loop)
}

// ToggleOneShot flips the one-shot flag. A playing voice stops looping
// when the slot becomes one-shot.
func (e *Engine) ToggleOneShot(slotID int) slot.Config {
	cfg := e.table.Update(slotID, func(c *slot.Config) { c.OneShot = !c.OneShot })
	return e.binder.SetLoop(slotID, cfg.Loop)
}

// ToggleReverse flips the reverse flag for the next trigger.
func (e *Engine) ToggleReverse(slotID int) slot.Config {
	return e.table.Update(slotID, func(c *slot.Config) { c.Reverse = !c.Reverse })
}

func (e *Engine) Instrument() Instrument {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.instrument
}

// SetInstrument switches what pad hits play. Switching to the piano stops
// every pad voice; switching back releases every piano note.
func (e *Engine) SetInstrument(i Instrument) {
	e.mu.Lock()
	prev := e.instrument
	e.instrument = i
	e.mu.Unlock()

	if prev == i {
		return
	}

	switch i {
	case Piano:
		e.voices.StopAll()
	case Sampler:
		e.keys.ReleaseAll()
	}
	e.log.Info("instrument changed", "from", prev, "to", i)
}

// PlayNote plays a MIDI note on the piano, whatever the instrument.
func (e *Engine) PlayNote(ctx context.Context, note int) error {
	return e.keys.Play(ctx, note)
}

func (e *Engine) ReleaseNotes() { e.keys.ReleaseAll() }

func (e *Engine) SetWave(w tone.Wave) { e.keys.SetWave(w) }

func (e *Engine) Wave() tone.Wave { return e.keys.Wave() }

// Projection projects the current sequence onto the step grid.
func (e *Engine) Projection() sequence.Grid {
	s, _ := e.seq.Current()
	return sequence.Project(s.Notes())
}

// Stepper returns a step clock over the current sequence that hits pads
// through the engine.
func (e *Engine) Stepper(opts ...sequence.StepperOption) *sequence.Stepper {
	opts = append([]sequence.StepperOption{sequence.WithStepLogger(e.log)}, opts...)
	return sequence.NewStepper(e.Projection(), e.seq.Tempo(), e.Hit, opts...)
}
