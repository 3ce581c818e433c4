// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"math"
	"sync/atomic"
)

// smoothingTime is the time constant, in seconds, of the glide toward a
// new target.
const smoothingTime = 0.005

// Param is a control value. Set and Value may be called from any
// goroutine; the smoothed value is advanced only by the render path.
type Param struct {
	target atomic.Uint64

	current float64
	coeff   float64
}

func NewParam(value float64, sampleRate int) *Param {
	p := &Param{
		current: value,
		coeff:   1,
	}
	if sampleRate > 0 {
		p.coeff = 1 - math.Exp(-1/(smoothingTime*float64(sampleRate)))
	}
	p.Set(value)

	return p
}

// Set changes the target value.
func (p *Param) Set(v float64) {
	p.target.Store(math.Float64bits(v))
}

// Value is the target value, the last value passed to Set.
func (p *Param) Value() float64 {
	return math.Float64frombits(p.target.Load())
}

// next advances the smoothed value by one frame.
func (p *Param) next() float64 {
	t := p.Value()
	if p.current == t {
		return t
	}

	p.current += (t - p.current) * p.coeff
	if math.Abs(t-p.current) < 1e-6 {
		p.current = t
	}

	return p.current
}
