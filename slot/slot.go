// SPDX-License-Identifier: EPL-2.0

// Package slot holds the declarative configuration of every trigger slot.
//
// A slot is a pad or a sequencer step. Its Config is plain data: no audio
// objects live here. Configs are created with defaults the first time a
// slot is referenced and are never removed.
package slot

import (
	"slices"
	"sync"

	"github.com/ik5/padbx/utils"
)

const (
	DefaultVolume = 1.0
	MinPan        = -1.0
	MaxPan        = 1.0
)

// Config is the playback configuration of one slot.
type Config struct {
	SlotID   int
	SampleID *int // nil means no sample assigned

	Volume float64 // linear gain
	Pitch  float64 // semitones
	Pan    float64 // -1 left, 1 right

	Loop    bool
	OneShot bool
	Reverse bool
}

// Default returns the configuration a slot starts with.
func Default(slotID int) Config {
	return Config{SlotID: slotID, Volume: DefaultVolume}
}

// Looping reports whether playback should loop. One-shot always wins.
func (c Config) Looping() bool {
	return c.Loop && !c.OneShot
}

// Rate is the playback-rate multiplier for the configured pitch.
func (c Config) Rate() float64 {
	return utils.SemitonesToRate(c.Pitch)
}

// HasSample reports whether a sample is assigned.
func (c Config) HasSample() bool {
	return c.SampleID != nil
}

// Sample returns a pointer to a copy of id, for assigning SampleID.
func Sample(id int) *int {
	return &id
}

func (c Config) normalize() Config {
	c.Pan = utils.Clamp(c.Pan, MinPan, MaxPan)
	if c.SampleID != nil {
		c.SampleID = Sample(*c.SampleID)
	}
	return c
}

// Table maps slot ids to configs. It is safe for concurrent use; every
// method returns copies, never references into the table.
type Table struct {
	mu      sync.RWMutex
	configs map[int]Config
}

// NewTable returns a table holding seed, normalized.
func NewTable(seed ...Config) *Table {
	t := &Table{configs: make(map[int]Config, len(seed))}
	for _, c := range seed {
		t.configs[c.SlotID] = c.normalize()
	}

	return t
}

// Ensure creates default configs for slots [0, n) that do not exist yet.
func (t *Table) Ensure(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id := range n {
		if _, ok := t.configs[id]; !ok {
			t.configs[id] = Default(id)
		}
	}
}

// Get returns the config of slotID, creating a default one on first use.
func (t *Table) Get(slotID int) Config {
	t.mu.RLock()
	c, ok := t.configs[slotID]
	t.mu.RUnlock()
	if ok {
		return c.normalize()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if c, ok = t.configs[slotID]; !ok {
		c = Default(slotID)
		t.configs[slotID] = c
	}

	return c.normalize()
}

// Update applies fn to the config of slotID under the table lock and
// returns the stored result. The slot id cannot be changed by fn.
func (t *Table) Update(slotID int, fn func(*Config)) Config {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.configs[slotID]
	if !ok {
		c = Default(slotID)
	}
	fn(&c)
	c.SlotID = slotID
	c = c.normalize()
	t.configs[slotID] = c

	return c.normalize()
}

// Put replaces the config stored under c.SlotID.
func (t *Table) Put(c Config) Config {
	return t.Update(c.SlotID, func(dst *Config) { *dst = c })
}

// Slots returns every known slot id in ascending order.
func (t *Table) Slots() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int, 0, len(t.configs))
	for id := range t.configs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Len is the number of known slots.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.configs)
}
