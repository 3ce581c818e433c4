// SPDX-License-Identifier: EPL-2.0

package voice

import "github.com/ik5/padbx/slot"

// Binder routes live edits to the slot table and the playing voice.
type Binder struct {
	table  *slot.Table
	voices *Manager
}

func NewBinder(table *slot.Table, voices *Manager) *Binder {
	return &Binder{table: table, voices: voices}
}

func (b *Binder) SetVolume(slotID int, v float64) slot.Config {
	cfg := b.table.Update(slotID, func(c *slot.Config) { c.Volume = v })
	if voice := b.voices.Active(slotID); voice != nil {
		voice.Chain.Gain.Param().Set(cfg.Volume)
	}

	return cfg
}

// SetPitch sets the pitch in semitones.
func (b *Binder) SetPitch(slotID int, semitones float64) slot.Config {
	cfg := b.table.Update(slotID, func(c *slot.Config) { c.Pitch = semitones })
	if voice := b.voices.Active(slotID); voice != nil {
		voice.Chain.Source.PlaybackRate().Set(cfg.Rate())
	}

	return cfg
}

// SetPan sets the pan, clamped to [-1, 1].
func (b *Binder) SetPan(slotID int, pan float64) slot.Config {
	cfg := b.table.Update(slotID, func(c *slot.Config) { c.Pan = pan })
	if voice := b.voices.Active(slotID); voice != nil {
		voice.Chain.Panner.Param().Set(cfg.Pan)
	}

	return cfg
}

// SetLoop sets the loop flag. A one-shot slot keeps its voice unlooped.
func (b *Binder) SetLoop(slotID int, on bool) slot.Config {
	cfg := b.table.Update(slotID, func(c *slot.Config) { c.Loop = on })
	if voice := b.voices.Active(slotID); voice != nil {
		voice.Chain.Source.SetLoop(cfg.Looping())
	}

	return cfg
}
