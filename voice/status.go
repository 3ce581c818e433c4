// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"
	"strconv"
)

const (
	msgNoSample   = "Choose a sample for this pad first."
	msgStoppedAll = "Stopped all pads."
)

// Status describes a triggered slot for display.
type Status struct {
	Slot   int
	Label  string
	Volume float64
	Pitch  float64
	Pan    float64
}

func (s Status) String() string {
	return fmt.Sprintf("Pad %d ▶ %s | vol %.2f | pitch %s st | pan %s",
		s.Slot, s.Label, s.Volume, number(s.Pitch), number(s.Pan))
}

// number prints v in its shortest exact form, 0.5 rather than 0.500000.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
