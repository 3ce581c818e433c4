// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"math"

	"github.com/ik5/padbx/audio"
	"github.com/ik5/padbx/utils"
)

// Node renders stereo interleaved frames, overwriting all of dst. It
// returns false once it has nothing more to play.
type Node interface {
	Render(dst []float32) bool
}

// Gain scales its input by a linear factor.
type Gain struct {
	gain *Param
}

func NewGain(value float64, sampleRate int) *Gain {
	return &Gain{gain: NewParam(value, sampleRate)}
}

func (g *Gain) Param() *Param { return g.gain }

func (g *Gain) apply(left, right []float32, stereo bool) {
	for i := range left {
		v := float32(g.gain.next())
		left[i] *= v
		if stereo {
			right[i] *= v
		}
	}
}

// Panner places its input in the stereo field using the equal-power law of
// the Web Audio StereoPannerNode. Mono input is spread across both sides;
// stereo input has the far side folded into the near one.
type Panner struct {
	pan *Param
}

func NewPanner(value float64, sampleRate int) *Panner {
	return &Panner{pan: NewParam(value, sampleRate)}
}

func (p *Panner) Param() *Param { return p.pan }

// panGains returns the left and right gains for one frame.
func panGains(pan float64, stereo bool) (float64, float64) {
	pan = utils.Clamp(pan, -1, 1)

	x := (pan + 1) / 2
	if stereo {
		x = pan + 1
		if pan > 0 {
			x = pan
		}
	}

	return math.Cos(x * math.Pi / 2), math.Sin(x * math.Pi / 2)
}

func (p *Panner) apply(left, right []float32, stereo bool) {
	for i := range left {
		pan := p.pan.next()
		gl, gr := panGains(pan, stereo)

		if !stereo {
			in := left[i]
			left[i] = float32(gl) * in
			right[i] = float32(gr) * in
			continue
		}

		inL, inR := left[i], right[i]
		if pan <= 0 {
			left[i] = inL + inR*float32(gl)
			right[i] = inR * float32(gr)
		} else {
			left[i] = inL * float32(gl)
			right[i] = inR + inL*float32(gr)
		}
	}
}

// Chain is a BufferSource followed by a Gain and a Panner.
type Chain struct {
	Source *BufferSource
	Gain   *Gain
	Panner *Panner

	left  []float32
	right []float32
}

type chainSettings struct {
	gain, pan, rate float64
	loop            bool
}

// ChainOption sets the starting value of a chain control. Starting values
// apply from the first frame, without a glide.
type ChainOption func(*chainSettings)

func WithGain(v float64) ChainOption         { return func(s *chainSettings) { s.gain = v } }
func WithPan(v float64) ChainOption          { return func(s *chainSettings) { s.pan = v } }
func WithPlaybackRate(v float64) ChainOption { return func(s *chainSettings) { s.rate = v } }
func WithLoop(on bool) ChainOption           { return func(s *chainSettings) { s.loop = on } }

// NewChain builds a chain playing buf on a device running at deviceRate.
// Without options it is unity gain, centered, at the natural rate.
func NewChain(buf *audio.Buffer, deviceRate int, opts ...ChainOption) *Chain {
	s := chainSettings{gain: 1, rate: 1}
	for _, opt := range opts {
		opt(&s)
	}

	src := NewBufferSource(buf, deviceRate)
	src.rate = NewParam(s.rate, deviceRate)
	src.SetLoop(s.loop)

	return &Chain{
		Source: src,
		Gain:   NewGain(s.gain, deviceRate),
		Panner: NewPanner(s.pan, deviceRate),
	}
}

func (c *Chain) Render(dst []float32) bool {
	frames := len(dst) / 2
	if cap(c.left) < frames {
		c.left = make([]float32, frames)
		c.right = make([]float32, frames)
	}
	left, right := c.left[:frames], c.right[:frames]

	n, more := c.Source.read(left, right)
	stereo := c.Source.Stereo()
	c.Gain.apply(left[:n], right[:n], stereo)
	c.Panner.apply(left[:n], right[:n], stereo)

	for i := range n {
		dst[2*i] = left[i]
		dst[2*i+1] = right[i]
	}
	clear(dst[2*n:])

	return more
}

// Start starts the source.
func (c *Chain) Start() { c.Source.Start() }

// Stop stops the source. It is idempotent.
func (c *Chain) Stop() { c.Source.Stop() }
