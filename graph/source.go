// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"math"
	"sync/atomic"

	"github.com/ik5/padbx/audio"
	"github.com/ik5/padbx/utils"
)

const (
	sourceIdle int32 = iota
	sourcePlaying
	sourceStopped
)

// BufferSource plays a decoded buffer at a variable rate. Buffers with more
// than two channels play their first two.
type BufferSource struct {
	buf   *audio.Buffer
	ratio float64 // buffer rate over device rate

	rate  *Param
	loop  atomic.Bool
	state atomic.Int32

	pos float64
}

func NewBufferSource(buf *audio.Buffer, deviceRate int) *BufferSource {
	ratio := 1.0
	if deviceRate > 0 && buf.SampleRate() > 0 {
		ratio = float64(buf.SampleRate()) / float64(deviceRate)
	}

	return &BufferSource{
		buf:   buf,
		ratio: ratio,
		rate:  NewParam(1, deviceRate),
	}
}

func (s *BufferSource) Buffer() *audio.Buffer { return s.buf }

// PlaybackRate is the speed multiplier; 2 plays an octave up.
func (s *BufferSource) PlaybackRate() *Param { return s.rate }

func (s *BufferSource) SetLoop(on bool) { s.loop.Store(on) }
func (s *BufferSource) Loop() bool      { return s.loop.Load() }

// Start begins playback. Starting twice, or after Stop, does nothing.
func (s *BufferSource) Start() {
	s.state.CompareAndSwap(sourceIdle, sourcePlaying)
}

// Stop ends playback. It may be called any number of times, before or
// after Start.
func (s *BufferSource) Stop() {
	s.state.Store(sourceStopped)
}

func (s *BufferSource) Playing() bool { return s.state.Load() == sourcePlaying }
func (s *BufferSource) Stopped() bool { return s.state.Load() == sourceStopped }

// Stereo reports whether the source produces two channels.
func (s *BufferSource) Stereo() bool { return s.buf.Channels() > 1 }

func sampleAt(ch []float32, i int, loop bool) float32 {
	n := len(ch)
	if loop {
		i %= n
		if i < 0 {
			i += n
		}
		return ch[i]
	}
	if i < 0 {
		return ch[0]
	}
	if i >= n {
		return 0
	}
	return ch[i]
}

func interpolate(ch []float32, i int, frac float32, loop bool) float32 {
	if frac == 0 {
		return sampleAt(ch, i, loop)
	}
	return utils.CubicInterpolate(
		sampleAt(ch, i-1, loop),
		sampleAt(ch, i, loop),
		sampleAt(ch, i+1, loop),
		sampleAt(ch, i+2, loop),
		frac)
}

// read renders up to len(left) frames. It returns the frames written and
// false once the source has finished. An unstarted source writes nothing
// and stays alive.
func (s *BufferSource) read(left, right []float32) (int, bool) {
	switch s.state.Load() {
	case sourceIdle:
		return 0, true
	case sourceStopped:
		return 0, false
	}

	n := s.buf.Length()
	if n == 0 {
		s.Stop()
		return 0, false
	}

	l := s.buf.Channel(0)
	r := l
	if s.Stereo() {
		r = s.buf.Channel(1)
	}
	loop := s.loop.Load()

	for f := range left {
		if loop && s.pos >= float64(n) {
			s.pos = math.Mod(s.pos, float64(n))
		}
		if !loop && s.pos >= float64(n) {
			s.Stop()
			return f, false
		}

		i := int(s.pos)
		frac := float32(s.pos - float64(i))
		left[f] = interpolate(l, i, frac, loop)
		right[f] = interpolate(r, i, frac, loop)

		s.pos += max(0, s.rate.next()) * s.ratio
	}

	return len(left), true
}
