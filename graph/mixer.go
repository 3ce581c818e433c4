// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"sync"
	"sync/atomic"
)

type connection struct {
	node    Node
	onEnded func()
}

// Mixer is the destination node of a device. It sums every connected node
// into stereo interleaved output.
type Mixer struct {
	rate int

	mu      sync.Mutex
	conns   []connection
	scratch []float32

	frames atomic.Int64
}

func NewMixer(sampleRate int) *Mixer {
	return &Mixer{rate: sampleRate}
}

func (m *Mixer) SampleRate() int { return m.rate }

// Connect adds n to the mix. onEnded, if not nil, is called once on its
// own goroutine when n finishes on its own. Nodes removed with Disconnect
// never report an end.
func (m *Mixer) Connect(n Node, onEnded func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.conns = append(m.conns, connection{node: n, onEnded: onEnded})
}

// Disconnect removes n from the mix and reports whether it was connected.
func (m *Mixer) Disconnect(n Node) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.conns {
		if c.node == n {
			m.conns = append(m.conns[:i], m.conns[i+1:]...)
			return true
		}
	}

	return false
}

// Connected reports whether n is part of the mix.
func (m *Mixer) Connected(n Node) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.conns {
		if c.node == n {
			return true
		}
	}

	return false
}

// Len is the number of connected nodes.
func (m *Mixer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.conns)
}

// Frames is the number of frames rendered so far.
func (m *Mixer) Frames() int64 {
	return m.frames.Load()
}

// Render fills dst with the next len(dst)/2 stereo frames.
func (m *Mixer) Render(dst []float32) error {
	if len(dst)%2 != 0 {
		return ErrOddFrameBuffer
	}

	m.mu.Lock()

	clear(dst)
	if cap(m.scratch) < len(dst) {
		m.scratch = make([]float32, len(dst))
	}
	scratch := m.scratch[:len(dst)]

	var ended []func()
	kept := m.conns[:0]
	for _, c := range m.conns {
		more := c.node.Render(scratch)
		for i, v := range scratch {
			dst[i] += v
		}

		if more {
			kept = append(kept, c)
			continue
		}
		if c.onEnded != nil {
			ended = append(ended, c.onEnded)
		}
	}
	clear(m.conns[len(kept):])
	m.conns = kept

	m.frames.Add(int64(len(dst) / 2))
	m.mu.Unlock()

	for _, fn := range ended {
		go fn()
	}

	return nil
}
