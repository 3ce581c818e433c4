// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"math"
	"sync/atomic"
)

const (
	peakLevel    = 0.32
	sustainLevel = 0.12

	attackTime  = 0.02 // seconds to reach peakLevel
	decayStart  = 0.12 // seconds before the decay toward sustainLevel
	decayTau    = 0.08
	releaseTau  = 0.06
	releaseTime = 0.12 // seconds from release to silence
)

// Osc is a single enveloped oscillator. It implements graph.Node and plays
// the same signal on both channels.
type Osc struct {
	wave  Wave
	rate  float64
	inc   float64
	phase float64

	frame        int
	releaseFrame int
	level        float64
	decayCoeff   float64
	releaseCoeff float64

	released atomic.Bool
	stopped  atomic.Bool
}

func NewOsc(freq float64, wave Wave, sampleRate int) *Osc {
	rate := float64(sampleRate)
	return &Osc{
		wave:         wave,
		rate:         rate,
		inc:          freq / rate,
		releaseFrame: -1,
		decayCoeff:   math.Exp(-1 / (decayTau * rate)),
		releaseCoeff: math.Exp(-1 / (releaseTau * rate)),
	}
}

// Release starts the fade out. It may be called more than once.
func (o *Osc) Release() { o.released.Store(true) }

// Stop silences the oscillator at once.
func (o *Osc) Stop() { o.stopped.Store(true) }

func (o *Osc) Released() bool { return o.released.Load() }
func (o *Osc) Stopped() bool  { return o.stopped.Load() }

func (o *Osc) envelope() float64 {
	if o.releaseFrame < 0 && o.released.Load() {
		o.releaseFrame = o.frame
	}

	t := float64(o.frame) / o.rate
	o.frame++

	if o.releaseFrame >= 0 {
		if float64(o.frame-o.releaseFrame) > releaseTime*o.rate {
			o.stopped.Store(true)
			return 0
		}
		o.level *= o.releaseCoeff
		return o.level
	}

	switch {
	case t < attackTime:
		o.level = peakLevel * t / attackTime
	case t < decayStart:
		o.level = peakLevel
	default:
		o.level = sustainLevel + (o.level-sustainLevel)*o.decayCoeff
	}

	return o.level
}

func (o *Osc) Render(dst []float32) bool {
	frames := len(dst) / 2
	for f := range frames {
		if o.stopped.Load() {
			clear(dst[2*f:])
			return false
		}

		s := float32(o.wave.at(o.phase) * o.envelope())
		dst[2*f] = s
		dst[2*f+1] = s

		o.phase += o.inc
		o.phase -= math.Floor(o.phase)
	}

	return !o.stopped.Load()
}
