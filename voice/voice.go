// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"github.com/google/uuid"
	"github.com/ik5/padbx/graph"
	"github.com/ik5/padbx/slot"
)

// Voice is one playing instance of a sample.
type Voice struct {
	ID     uuid.UUID
	Slot   int
	Gen    uint64 // registration generation
	Config slot.Config
	Chain  *graph.Chain
}

// Playing reports whether the voice is still producing sound.
func (v *Voice) Playing() bool {
	return v.Chain.Source.Playing()
}

// Looping reports the live loop flag.
func (v *Voice) Looping() bool {
	return v.Chain.Source.Loop()
}
