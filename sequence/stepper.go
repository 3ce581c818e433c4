// SPDX-License-Identifier: EPL-2.0

package sequence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// TriggerFunc plays a slot.
type TriggerFunc func(ctx context.Context, slotID int) error

// StepInterval is the duration of one column: an eighth note at bpm.
func StepInterval(bpm int) time.Duration {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	return time.Minute / time.Duration(bpm*2)
}

// Stepper walks a Grid one column per step and triggers the slot of every
// active row.
type Stepper struct {
	trigger  TriggerFunc
	interval time.Duration
	slotFor  func(row int) int
	log      *slog.Logger

	mu   sync.Mutex
	grid Grid
	col  int
}

type StepperOption func(*Stepper)

func WithStepLogger(l *slog.Logger) StepperOption {
	return func(s *Stepper) { s.log = l }
}

// WithSlotMap sets the slot played for each row. The default plays the
// row's pitch class, so row 7 triggers slot 0.
func WithSlotMap(fn func(row int) int) StepperOption {
	return func(s *Stepper) { s.slotFor = fn }
}

// WithInterval overrides the step duration derived from the tempo.
func WithInterval(d time.Duration) StepperOption {
	return func(s *Stepper) {
		if d > 0 {
			s.interval = d
		}
	}
}

func NewStepper(grid Grid, bpm int, trigger TriggerFunc, opts ...StepperOption) *Stepper {
	s := &Stepper{
		trigger:  trigger,
		interval: StepInterval(bpm),
		slotFor:  func(row int) int { return Size - 1 - row },
		log:      slog.Default(),
		grid:     grid,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetGrid swaps the pattern. The position is kept.
func (s *Stepper) SetGrid(g Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = g
}

// Position is the column the next Step plays.
func (s *Stepper) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.col
}

// Reset moves back to the first column.
func (s *Stepper) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.col = 0
}

// Interval is the duration of one step.
func (s *Stepper) Interval() time.Duration { return s.interval }

// Step triggers the active rows of the current column and advances. It
// returns the column it played and the joined trigger errors.
func (s *Stepper) Step(ctx context.Context) (int, error) {
	s.mu.Lock()
	col := s.col
	rows := s.grid.Column(col)
	s.col = (s.col + 1) % Size
	s.mu.Unlock()

	var errs []error
	for _, row := range rows {
		slotID := s.slotFor(row)
		if err := s.trigger(ctx, slotID); err != nil {
			errs = append(errs, fmt.Errorf("step %d slot %d: %w", col, slotID, err))
		}
	}

	return col, errors.Join(errs...)
}

// Run steps immediately and then once per interval until ctx ends. Trigger
// failures are logged and do not stop the run.
func (s *Stepper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if col, err := s.Step(ctx); err != nil {
			s.log.Warn("sequencer step failed", "col", col, "err", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
