// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestSemitonesToRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		st   float64
		want float64
	}{
		{st: 0, want: 1},
		{st: 12, want: 2},
		{st: -12, want: 0.5},
		{st: 24, want: 4},
		{st: 7, want: 1.4983070768766815},
		{st: -0.5, want: 0.9715319411536059},
	}

	for _, tt := range tests {
		if got := SemitonesToRate(tt.st); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("SemitonesToRate(%v) = %v, want %v", tt.st, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, want float64
	}{
		{v: -3, want: -1},
		{v: -1, want: -1},
		{v: 0.25, want: 0.25},
		{v: 1, want: 1},
		{v: 7, want: 1},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, -1, 1); got != tt.want {
			t.Errorf("Clamp(%v, -1, 1) = %v, want %v", tt.v, got, tt.want)
		}
	}

	if got := Clamp(9, 0, 7); got != 7 {
		t.Errorf("Clamp(9, 0, 7) = %d, want 7", got)
	}
}

func BenchmarkSemitonesToRate(b *testing.B) {
	for b.Loop() {
		_ = SemitonesToRate(-3.5)
	}
}
