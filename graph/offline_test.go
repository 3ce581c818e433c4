// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"context"
	"errors"
	"testing"
)

var _ Device = (*Offline)(nil)

func TestOffline_Lifecycle(t *testing.T) {
	t.Parallel()

	d := NewOffline(44100)
	if d.State() != Suspended {
		t.Fatalf("initial State() = %v, want %v", d.State(), Suspended)
	}
	if _, err := d.Render(10); !errors.Is(err, ErrDeviceSuspended) {
		t.Errorf("Render() while suspended error = %v, want %v", err, ErrDeviceSuspended)
	}

	for range 2 {
		if err := d.Resume(t.Context()); err != nil {
			t.Fatalf("Resume() error = %v", err)
		}
	}
	if d.State() != Running || d.Resumes() != 1 {
		t.Errorf("State() = %v, Resumes() = %d, want running and 1", d.State(), d.Resumes())
	}

	out, err := d.Render(4410)
	if err != nil || len(out) != 8820 {
		t.Fatalf("Render() = (%d samples, %v)", len(out), err)
	}
	if got := d.CurrentTime(); got != 0.1 {
		t.Errorf("CurrentTime() = %v, want 0.1", got)
	}

	if err := d.Suspend(); err != nil || d.State() != Suspended {
		t.Errorf("Suspend() = %v, State() = %v", err, d.State())
	}

	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if err := d.Resume(t.Context()); !errors.Is(err, ErrDeviceClosed) {
		t.Errorf("Resume() after Close error = %v, want %v", err, ErrDeviceClosed)
	}
	if _, err := d.Render(1); !errors.Is(err, ErrDeviceClosed) {
		t.Errorf("Render() after Close error = %v, want %v", err, ErrDeviceClosed)
	}
	if err := d.Suspend(); !errors.Is(err, ErrDeviceClosed) {
		t.Errorf("Suspend() after Close error = %v, want %v", err, ErrDeviceClosed)
	}
}

func TestOffline_ResumeCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	d := NewOffline(8000)
	if err := d.Resume(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Resume() error = %v, want %v", err, context.Canceled)
	}
	if d.State() != Suspended {
		t.Errorf("State() = %v, want %v", d.State(), Suspended)
	}
}

func TestOffline_PlaysChain(t *testing.T) {
	t.Parallel()

	d := NewOffline(8000)
	if err := d.Resume(t.Context()); err != nil {
		t.Fatal(err)
	}

	c := NewChain(mustBuffer(t, 8000, []float32{0.5, 0.5}, []float32{-0.5, -0.5}), d.SampleRate())
	ended := make(chan struct{})
	d.Destination().Connect(c, func() { close(ended) })
	c.Start()

	out, err := d.Render(4)
	if err != nil {
		t.Fatal(err)
	}

	want := []float32{0.5, -0.5, 0.5, -0.5, 0, 0, 0, 0}
	for i := range want {
		if !near(out[i], want[i]) {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	<-ended
	if d.Destination().Len() != 0 {
		t.Error("finished chain is still connected")
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	for s, want := range map[State]string{Suspended: "suspended", Running: "running", Closed: "closed", State(9): "unknown"} {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
