// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/ik5/padbx/audio"
	"github.com/ik5/padbx/graph"
	"github.com/ik5/padbx/slot"
)

// Buffers hands out playable buffers. *asset.Store implements it.
type Buffers interface {
	PlayableBuffer(ctx context.Context, sampleID int, reverse bool) (*audio.Buffer, error)
}

// Manager owns the voice registration of every slot.
type Manager struct {
	dev     graph.Device
	buffers Buffers
	log     *slog.Logger
	status  func(string)
	label   func(sampleID int) string
	configs func(slotID int) slot.Config

	mu     sync.Mutex
	active map[int]*Voice
	gen    uint64
}

type Option func(*Manager)

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithStatus receives a human readable line after every trigger and
// stop-all.
func WithStatus(fn func(string)) Option {
	return func(m *Manager) { m.status = fn }
}

// WithLabeler names samples in status lines.
func WithLabeler(fn func(sampleID int) string) Option {
	return func(m *Manager) { m.label = fn }
}

// WithConfigs gives the live settings of a slot. Trigger reads them
// again once the buffer is loaded, so edits made during the load reach
// the new voice.
func WithConfigs(fn func(slotID int) slot.Config) Option {
	return func(m *Manager) { m.configs = fn }
}

func NewManager(dev graph.Device, buffers Buffers, opts ...Option) *Manager {
	m := &Manager{
		dev:     dev,
		buffers: buffers,
		log:     slog.Default(),
		status:  func(string) {},
		label: func(id int) string {
			return "sampleId " + strconv.Itoa(id)
		},
		active: make(map[int]*Voice),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) ensureRunning(ctx context.Context) error {
	if m.dev.State() == graph.Running {
		return nil
	}

	m.log.Debug("resuming audio device", "state", m.dev.State())
	if err := m.dev.Resume(ctx); err != nil {
		return fmt.Errorf("resume audio device: %w", err)
	}

	return nil
}

// Trigger plays cfg on slotID, replacing whatever the slot was playing.
// Fetch and decode failures are returned as they come from the buffer
// provider.
func (m *Manager) Trigger(ctx context.Context, slotID int, cfg slot.Config) (Status, error) {
	if !cfg.HasSample() {
		m.status(msgNoSample)
		return Status{}, ErrNoSampleAssigned
	}

	if err := m.ensureRunning(ctx); err != nil {
		return Status{}, err
	}

	m.Stop(slotID)

	buf, err := m.buffers.PlayableBuffer(ctx, *cfg.SampleID, cfg.Reverse)
	if err != nil {
		m.log.Warn("trigger failed", "slot", slotID, "sample", *cfg.SampleID, "err", err)
		return Status{}, err
	}

	// the buffer already fixes the sample and its direction
	if m.configs != nil {
		live := m.configs(slotID)
		cfg.Volume = live.Volume
		cfg.Pitch = live.Pitch
		cfg.Pan = live.Pan
		cfg.Loop = live.Loop
		cfg.OneShot = live.OneShot
	}

	chain := graph.NewChain(buf, m.dev.SampleRate(),
		graph.WithLoop(cfg.Looping()),
		graph.WithPlaybackRate(cfg.Rate()),
		graph.WithGain(cfg.Volume),
		graph.WithPan(cfg.Pan))

	m.mu.Lock()
	// a trigger that raced this one may have registered meanwhile
	if prev, ok := m.active[slotID]; ok {
		m.teardown(prev)
	}

	m.gen++
	v := &Voice{
		ID:     uuid.New(),
		Slot:   slotID,
		Gen:    m.gen,
		Config: cfg,
		Chain:  chain,
	}
	m.active[slotID] = v
	m.dev.Destination().Connect(chain, func() { m.ended(v) })
	chain.Start()
	m.mu.Unlock()

	st := Status{
		Slot:   slotID,
		Label:  m.label(*cfg.SampleID),
		Volume: cfg.Volume,
		Pitch:  cfg.Pitch,
		Pan:    cfg.Pan,
	}
	m.log.Debug("voice started",
		"slot", slotID,
		"sample", *cfg.SampleID,
		"voice", v.ID,
		"gen", v.Gen,
		"loop", cfg.Looping(),
		"reverse", cfg.Reverse)
	m.status(st.String())

	return st, nil
}

// teardown stops v and removes it from the mix and the registry. m.mu must
// be held.
func (m *Manager) teardown(v *Voice) {
	v.Chain.Stop()
	m.dev.Destination().Disconnect(v.Chain)
	delete(m.active, v.Slot)
}

func (m *Manager) ended(v *Voice) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.active[v.Slot]
	if !ok || cur != v || cur.Gen != v.Gen {
		m.log.Debug("ignoring end of superseded voice", "slot", v.Slot, "voice", v.ID, "gen", v.Gen)
		return
	}

	delete(m.active, v.Slot)
	m.log.Debug("voice ended", "slot", v.Slot, "voice", v.ID, "gen", v.Gen)
}

// Stop stops the voice of slotID. Stopping an idle slot does nothing.
func (m *Manager) Stop(slotID int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.active[slotID]; ok {
		m.teardown(v)
		m.log.Debug("voice stopped", "slot", slotID, "voice", v.ID, "gen", v.Gen)
	}
}

// StopAll stops every voice.
func (m *Manager) StopAll() {
	m.mu.Lock()
	for _, v := range m.active {
		m.teardown(v)
	}
	m.mu.Unlock()

	m.status(msgStoppedAll)
}

// Active returns the voice registered for slotID, or nil.
func (m *Manager) Active(slotID int) *Voice {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.active[slotID]
}

// ActiveSlots returns the slots with a registered voice, ascending.
func (m *Manager) ActiveSlots() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int, 0, len(m.active))
	for id := range m.active {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
