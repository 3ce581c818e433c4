// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrInvalidDstSize, ErrUnknownFormat, ErrMismatchedChannels, ErrNoChannels}

	for i, a := range all {
		if a == nil || a.Error() == "" {
			t.Fatalf("error %d is empty", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("read clip: %w", ErrInvalidDstSize)
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Error("errors.Is() failed for wrapped ErrInvalidDstSize")
	}
}
