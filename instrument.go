// SPDX-License-Identifier: EPL-2.0

package padbx

import "fmt"

// Instrument selects what a pad hit plays.
type Instrument int

const (
	Sampler Instrument = iota
	Piano
)

func (i Instrument) String() string {
	switch i {
	case Sampler:
		return "sampler"
	case Piano:
		return "piano"
	default:
		return fmt.Sprintf("Instrument(%d)", int(i))
	}
}
