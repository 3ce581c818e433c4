// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"fmt"
	"math"
)

type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
	Triangle
)

func (w Wave) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("Wave(%d)", int(w))
	}
}

// ParseWave accepts the names String returns.
func ParseWave(s string) (Wave, error) {
	for _, w := range []Wave{Sine, Square, Sawtooth, Triangle} {
		if w.String() == s {
			return w, nil
		}
	}
	return Sine, fmt.Errorf("%w: %q", ErrUnknownWave, s)
}

// at returns the waveform value at phase in [0, 1).
func (w Wave) at(phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
