// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"math"
	"testing"
)

// envelopeOsc plays a square wave slow enough that the first half second
// shows the envelope itself.
func envelopeOsc() *Osc {
	return NewOsc(1, Square, 1000)
}

func render(o *Osc, frames int) ([]float32, bool) {
	out := make([]float32, frames*2)
	more := o.Render(out)
	return out, more
}

func TestOsc_Envelope(t *testing.T) {
	t.Parallel()

	out, more := render(envelopeOsc(), 450)
	if !more {
		t.Fatal("Render() ended while held")
	}

	tests := []struct {
		frame int
		want  float64
		tol   float64
	}{
		{frame: 0, want: 0, tol: 1e-6},
		{frame: 10, want: 0.16, tol: 1e-6},
		{frame: 20, want: peakLevel, tol: 1e-6},
		{frame: 119, want: peakLevel, tol: 1e-6},
		{frame: 200, want: sustainLevel + 0.2*math.Exp(-81.0/80), tol: 1e-3},
		{frame: 449, want: sustainLevel, tol: 0.01},
	}

	for _, tt := range tests {
		if got := float64(out[2*tt.frame]); math.Abs(got-tt.want) > tt.tol {
			t.Errorf("frame %d = %v, want %v", tt.frame, got, tt.want)
		}
		if out[2*tt.frame] != out[2*tt.frame+1] {
			t.Errorf("frame %d channels differ", tt.frame)
		}
	}
}

func TestOsc_Release(t *testing.T) {
	t.Parallel()

	o := envelopeOsc()
	render(o, 100)
	o.Release()
	o.Release()

	out, more := render(o, 120)
	if !more {
		t.Fatal("Render() ended before the release time")
	}
	if !o.Released() || o.Stopped() {
		t.Fatalf("Released() = %v, Stopped() = %v", o.Released(), o.Stopped())
	}
	if out[0] >= peakLevel || out[0] <= 0 {
		t.Errorf("first released frame = %v, want inside (0, %v)", out[0], peakLevel)
	}
	if out[2*119] >= out[0]/4 {
		t.Errorf("last released frame = %v, want well below %v", out[2*119], out[0])
	}

	out, more = render(o, 10)
	if more {
		t.Error("Render() still playing after the release time")
	}
	for i, s := range out {
		if s != 0 {
			t.Fatalf("out[%d] = %v after release, want 0", i, s)
		}
	}
}

func TestOsc_Stop(t *testing.T) {
	t.Parallel()

	o := NewOsc(440, Sine, 8000)
	render(o, 64)
	o.Stop()

	out, more := render(o, 16)
	if more || !o.Stopped() {
		t.Fatalf("Render() after Stop = %v, Stopped() = %v", more, o.Stopped())
	}
	for i, s := range out {
		if s != 0 {
			t.Fatalf("out[%d] = %v after Stop, want 0", i, s)
		}
	}
}

func TestOsc_Pitch(t *testing.T) {
	t.Parallel()

	// 100Hz sawtooth at 8kHz wraps every 80 frames; the level holds
	// between 20ms and 120ms
	o := NewOsc(100, Sawtooth, 8000)
	out, _ := render(o, 960)

	wraps := 0
	for f := 201; f < 960; f++ {
		if out[2*f] < out[2*(f-1)] {
			wraps++
		}
	}
	if wraps != 9 {
		t.Errorf("sawtooth wrapped %d times, want 9", wraps)
	}
}

func BenchmarkOsc_Render(b *testing.B) {
	o := NewOsc(440, Triangle, 48000)
	buf := make([]float32, 1024)

	b.ReportAllocs()

	for b.Loop() {
		o.Render(buf)
	}
}
