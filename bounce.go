// SPDX-License-Identifier: EPL-2.0

package padbx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ik5/padbx/audio"
	"github.com/ik5/padbx/formats/wav"
	"github.com/ik5/padbx/graph"
	"github.com/ik5/padbx/slot"
	"github.com/ik5/padbx/voice"
)

const (
	DefaultBounceRate   = 44100
	DefaultRenderRate   = 48000
	DefaultBounceLength = 10 * time.Second

	bounceBlock = 256 // frames rendered per pass
)

// BounceOptions controls Bounce. Zero values take the defaults above.
type BounceOptions struct {
	SampleRate  int           // rate of the written file
	RenderRate  int           // rate the graph runs at
	MaxDuration time.Duration // cap for looping slots
	Logger      *slog.Logger
}

func (o BounceOptions) withDefaults() BounceOptions {
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultBounceRate
	}
	if o.RenderRate <= 0 {
		o.RenderRate = DefaultRenderRate
	}
	if o.MaxDuration <= 0 {
		o.MaxDuration = DefaultBounceLength
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Bounce renders one trigger of cfg offline and writes it to w as a mono
// 16-bit WAV. Rendering stops when the voice ends or, for looping slots,
// after MaxDuration. Trailing silence is dropped.
func Bounce(ctx context.Context, buffers voice.Buffers, cfg slot.Config, opts BounceOptions, w io.Writer) error {
	opts = opts.withDefaults()

	dev := graph.NewOffline(opts.RenderRate)
	defer dev.Close()

	m := voice.NewManager(dev, buffers, voice.WithLogger(opts.Logger))
	if _, err := m.Trigger(ctx, cfg.SlotID, cfg); err != nil {
		return fmt.Errorf("bounce slot %d: %w", cfg.SlotID, err)
	}

	maxFrames := int(opts.MaxDuration.Seconds() * float64(opts.RenderRate))
	left := make([]float32, 0, min(maxFrames, opts.RenderRate))
	right := make([]float32, 0, cap(left))
	last := 0

	for len(left) < maxFrames && dev.Destination().Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := dev.Render(min(bounceBlock, maxFrames-len(left)))
		if err != nil {
			return fmt.Errorf("bounce slot %d: %w", cfg.SlotID, err)
		}

		for f := 0; f+1 < len(out); f += 2 {
			left = append(left, out[f])
			right = append(right, out[f+1])
			if out[f] != 0 || out[f+1] != 0 {
				last = len(left)
			}
		}
	}
	m.StopAll()

	if last == 0 {
		return ErrEmptyBounce
	}

	buf, err := audio.NewBuffer(opts.RenderRate, left[:last], right[:last])
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	pcm, rate, err := audio.ResampleToMono16(audio.NewBufferReader(buf), opts.SampleRate, 4096)
	if err != nil {
		return fmt.Errorf("bounce slot %d: %w", cfg.SlotID, err)
	}

	opts.Logger.Debug("bounced slot",
		"slot", cfg.SlotID,
		"frames", last,
		"rate", rate,
		"samples", len(pcm))

	return wav.WriteWAV16(w, rate, pcm)
}
