// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ik5/padbx"
	"github.com/ik5/padbx/tone"
	"golang.org/x/term"
)

// padKeys lists the pad keys in pad order, four rows of four.
const padKeys = "1234qwerasdfzxcv"

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b

	volumeStep = 0.05
	panStep    = 0.1
)

var waves = []tone.Wave{tone.Sine, tone.Square, tone.Sawtooth, tone.Triangle}

const help = `pads     1234 qwer asdf zxcv     space  stop all
sample   [ ]   volume - =   pitch , .   pan ; '
toggles  L loop  O one-shot  R reverse
piano    P toggle  W waveform
sequence G show grid  S start/stop
quit     Esc or Ctrl-C`

// console maps terminal keys to engine operations. Edits apply to the
// last pad hit.
type console struct {
	eng *padbx.Engine
	log *slog.Logger

	selected int
	seqStop  context.CancelFunc
}

func newConsole(eng *padbx.Engine, log *slog.Logger) *console {
	return &console{eng: eng, log: log}
}

func printStatus(line string) {
	fmt.Print(line + "\r\n")
}

func printBlock(s string) {
	fmt.Print(strings.ReplaceAll(s, "\n", "\r\n") + "\r\n")
}

func (c *console) run(ctx context.Context) error {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer func() { _ = term.Restore(fd, old) }()
	}

	printBlock(help)

	keys := make(chan byte)
	go func() {
		defer close(keys)

		r := bufio.NewReader(os.Stdin)
		for {
			b, err := r.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					c.log.Warn("reading keys", "err", err)
				}
				return
			}
			keys <- b
		}
	}()

	defer c.stopSequence()

	for {
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok || k == keyCtrlC || k == keyEsc {
				return nil
			}
			c.handle(ctx, k)
		}
	}
}

func (c *console) handle(ctx context.Context, k byte) {
	if pad := strings.IndexByte(padKeys, k); pad >= 0 {
		c.selected = pad
		if err := c.eng.Hit(ctx, pad); err != nil {
			c.log.Debug("hit failed", "pad", pad, "err", err)
		}
		return
	}

	pad := c.selected
	switch k {
	case ' ':
		c.eng.StopAll()
		c.eng.ReleaseNotes()
	case '[', ']':
		delta := 1
		if k == '[' {
			delta = -1
		}
		if _, ok := c.eng.CycleSample(pad, delta); ok {
			printStatus(fmt.Sprintf("Pad %d: %s", pad, c.eng.Label(pad)))
		}
	case '-':
		c.eng.SetVolume(pad, c.eng.Config(pad).Volume-volumeStep)
	case '=':
		c.eng.SetVolume(pad, c.eng.Config(pad).Volume+volumeStep)
	case ',':
		c.eng.SetPitch(pad, c.eng.Config(pad).Pitch-1)
	case '.':
		c.eng.SetPitch(pad, c.eng.Config(pad).Pitch+1)
	case ';':
		c.eng.SetPan(pad, c.eng.Config(pad).Pan-panStep)
	case '\'':
		c.eng.SetPan(pad, c.eng.Config(pad).Pan+panStep)
	case 'L':
		cfg := c.eng.ToggleLoop(pad)
		printStatus(fmt.Sprintf("Pad %d loop %v", pad, cfg.Loop))
	case 'O':
		cfg := c.eng.ToggleOneShot(pad)
		printStatus(fmt.Sprintf("Pad %d one-shot %v", pad, cfg.OneShot))
	case 'R':
		cfg := c.eng.ToggleReverse(pad)
		printStatus(fmt.Sprintf("Pad %d reverse %v", pad, cfg.Reverse))
	case 'P':
		next := padbx.Piano
		if c.eng.Instrument() == padbx.Piano {
			next = padbx.Sampler
		}
		c.eng.SetInstrument(next)
		printStatus("Instrument: " + next.String())
	case 'W':
		cur := c.eng.Wave()
		next := waves[(int(cur)+1)%len(waves)]
		c.eng.SetWave(next)
		printStatus("Waveform: " + next.String())
	case 'G':
		printBlock(c.eng.Projection().String())
	case 'S':
		c.toggleSequence(ctx)
	}
}

func (c *console) toggleSequence(ctx context.Context) {
	if c.seqStop != nil {
		c.stopSequence()
		printStatus("Sequence stopped.")
		return
	}

	seqCtx, cancel := context.WithCancel(ctx)
	c.seqStop = cancel

	stepper := c.eng.Stepper()
	go func() {
		if err := stepper.Run(seqCtx); err != nil && !errors.Is(err, context.Canceled) {
			c.log.Warn("sequence stopped", "err", err)
		}
	}()
	printStatus(fmt.Sprintf("Sequence playing, step %v.", stepper.Interval()))
}

func (c *console) stopSequence() {
	if c.seqStop != nil {
		c.seqStop()
		c.seqStop = nil
	}
}
