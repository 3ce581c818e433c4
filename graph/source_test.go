// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"testing"
)

func render(s *BufferSource, frames int) ([]float32, int, bool) {
	left := make([]float32, frames)
	right := make([]float32, frames)
	n, more := s.read(left, right)
	return left[:n], n, more
}

func TestBufferSource_PlaysOnce(t *testing.T) {
	t.Parallel()

	s := NewBufferSource(mustBuffer(t, 8000, []float32{0.1, 0.2, 0.3, 0.4}), 8000)
	s.Start()

	got, n, more := render(s, 8)
	if n != 4 || more {
		t.Fatalf("read() = (%d, %v), want (4, false)", n, more)
	}
	for i, want := range []float32{0.1, 0.2, 0.3, 0.4} {
		if got[i] != want {
			t.Errorf("frame %d = %v, want %v", i, got[i], want)
		}
	}
	if !s.Stopped() {
		t.Error("source did not stop at the end")
	}
}

func TestBufferSource_Loop(t *testing.T) {
	t.Parallel()

	s := NewBufferSource(mustBuffer(t, 8000, []float32{1, 2, 3, 4}), 8000)
	s.SetLoop(true)
	s.Start()

	got, n, more := render(s, 10)
	if n != 10 || !more {
		t.Fatalf("read() = (%d, %v), want (10, true)", n, more)
	}
	for i, want := range []float32{1, 2, 3, 4, 1, 2, 3, 4, 1, 2} {
		if got[i] != want {
			t.Errorf("frame %d = %v, want %v", i, got[i], want)
		}
	}

	// turning the loop off lets the current pass finish
	s.SetLoop(false)
	_, n, more = render(s, 10)
	if n != 2 || more {
		t.Errorf("read() after loop off = (%d, %v), want (2, false)", n, more)
	}
}

func TestBufferSource_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bufRate    int
		deviceRate int
		rate       float64
		want       int
	}{
		{name: "unity", bufRate: 8000, deviceRate: 8000, rate: 1, want: 100},
		{name: "octave up", bufRate: 8000, deviceRate: 8000, rate: 2, want: 50},
		{name: "octave down", bufRate: 8000, deviceRate: 8000, rate: 0.5, want: 200},
		{name: "device twice as fast", bufRate: 8000, deviceRate: 16000, rate: 1, want: 200},
		{name: "device half as fast", bufRate: 16000, deviceRate: 8000, rate: 1, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewChain(mustBuffer(t, tt.bufRate, make([]float32, 100)), tt.deviceRate, WithPlaybackRate(tt.rate)).Source
			s.Start()

			_, n, more := render(s, 1000)
			if n != tt.want || more {
				t.Errorf("read() = (%d, %v), want (%d, false)", n, more, tt.want)
			}
		})
	}
}

func TestBufferSource_Stereo(t *testing.T) {
	t.Parallel()

	s := NewBufferSource(mustBuffer(t, 8000, []float32{1, 1}, []float32{-1, -1}, []float32{5, 5}), 8000)
	if !s.Stereo() {
		t.Fatal("Stereo() = false for a three channel buffer")
	}
	s.Start()

	left := make([]float32, 2)
	right := make([]float32, 2)
	s.read(left, right)
	if left[0] != 1 || right[0] != -1 {
		t.Errorf("first frame = (%v, %v), want (1, -1)", left[0], right[0])
	}
}

func TestBufferSource_StartStop(t *testing.T) {
	t.Parallel()

	s := NewBufferSource(mustBuffer(t, 8000, []float32{1, 1, 1}), 8000)
	if _, n, more := render(s, 2); n != 0 || !more {
		t.Errorf("idle read() = (%d, %v), want (0, true)", n, more)
	}

	s.Stop()
	s.Stop()
	s.Start()
	if s.Playing() {
		t.Error("Start() revived a stopped source")
	}
	if _, n, more := render(s, 2); n != 0 || more {
		t.Errorf("stopped read() = (%d, %v), want (0, false)", n, more)
	}
}

func TestBufferSource_Empty(t *testing.T) {
	t.Parallel()

	s := NewBufferSource(mustBuffer(t, 8000, []float32{}), 8000)
	s.SetLoop(true)
	s.Start()
	if _, n, more := render(s, 4); n != 0 || more {
		t.Errorf("read() = (%d, %v), want (0, false)", n, more)
	}
}
