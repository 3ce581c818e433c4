// SPDX-License-Identifier: EPL-2.0

package sequence

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"
)

type triggerLog struct {
	mu    sync.Mutex
	slots []int
	fail  map[int]error
}

func (l *triggerLog) trigger(_ context.Context, slotID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.slots = append(l.slots, slotID)
	return l.fail[slotID]
}

func (l *triggerLog) played() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.slots)
}

func TestStepInterval(t *testing.T) {
	t.Parallel()

	tests := map[int]time.Duration{
		120: 250 * time.Millisecond,
		60:  500 * time.Millisecond,
		0:   250 * time.Millisecond,
	}
	for bpm, want := range tests {
		if got := StepInterval(bpm); got != want {
			t.Errorf("StepInterval(%d) = %v, want %v", bpm, got, want)
		}
	}
}

func TestStepper_Step(t *testing.T) {
	t.Parallel()

	g := Project([]Note{
		{TimeOffset: 0, Length: 1, Num: 0},
		{TimeOffset: 0, Length: 1, Num: 2},
		{TimeOffset: 7, Length: 1, Num: 5},
	})
	log := &triggerLog{}
	s := NewStepper(g, 120, log.trigger)

	col, err := s.Step(t.Context())
	if col != 0 || err != nil {
		t.Fatalf("Step() = (%d, %v), want (0, nil)", col, err)
	}
	if got := log.played(); !slices.Equal(got, []int{2, 0}) {
		t.Errorf("column 0 played %v, want [2 0]", got)
	}

	for range 7 {
		if _, err := s.Step(t.Context()); err != nil {
			t.Fatal(err)
		}
	}
	if got := log.played(); !slices.Equal(got, []int{2, 0, 5}) {
		t.Errorf("full pass played %v, want [2 0 5]", got)
	}
	if s.Position() != 0 {
		t.Errorf("Position() after a full pass = %d, want 0", s.Position())
	}
}

func TestStepper_Errors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	g := Project([]Note{{TimeOffset: 0, Length: 1, Num: 1}, {TimeOffset: 0, Length: 1, Num: 3}})
	log := &triggerLog{fail: map[int]error{1: errBoom}}

	_, err := NewStepper(g, 120, log.trigger).Step(t.Context())
	if !errors.Is(err, errBoom) {
		t.Errorf("Step() error = %v, want %v", err, errBoom)
	}
	if got := log.played(); !slices.Equal(got, []int{3, 1}) {
		t.Errorf("played %v, want both slots despite the failure", got)
	}
}

func TestStepper_SlotMapAndReset(t *testing.T) {
	t.Parallel()

	log := &triggerLog{}
	s := NewStepper(Project([]Note{{TimeOffset: 0, Length: 1, Num: 0}}), 120, log.trigger,
		WithSlotMap(func(row int) int { return 100 + row }))

	_, _ = s.Step(t.Context())
	_, _ = s.Step(t.Context())
	s.Reset()
	_, _ = s.Step(t.Context())

	if got := log.played(); !slices.Equal(got, []int{107, 107}) {
		t.Errorf("played %v, want [107 107]", got)
	}

	s.SetGrid(Grid{})
	_, _ = s.Step(t.Context())
	if len(log.played()) != 2 {
		t.Error("empty grid triggered a slot")
	}
}

func TestStepper_Run(t *testing.T) {
	t.Parallel()

	var g Grid
	for col := range Size {
		g.cells[7*Size+col] = true
	}

	log := &triggerLog{fail: map[int]error{0: errors.New("missing sample")}}
	s := NewStepper(g, 120, log.trigger,
		WithInterval(time.Millisecond),
		WithStepLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for len(log.played()) < 3 {
		if time.Now().After(deadline) {
			t.Fatal("Run() did not keep stepping after failures")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}
