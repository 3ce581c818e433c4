// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"math"
	"testing"

	"github.com/ik5/padbx/audio"
)

const tolerance = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < tolerance
}

func mustBuffer(t testing.TB, rate int, channels ...[]float32) *audio.Buffer {
	t.Helper()

	buf, err := audio.NewBuffer(rate, channels...)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

// constNode plays value on both channels for frames frames.
type constNode struct {
	value  float32
	frames int
}

func (n *constNode) Render(dst []float32) bool {
	count := min(len(dst)/2, n.frames)
	for i := range count {
		dst[2*i] = n.value
		dst[2*i+1] = n.value
	}
	clear(dst[2*count:])
	n.frames -= count

	return n.frames > 0
}
