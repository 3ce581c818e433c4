// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/padbx/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples; preserves channel count.
// When downsampling, incoming frames pass through a one-pole low-pass.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are the outer Catmull-Rom points.
	window [4][]float32
	real   [4]bool
	primed bool
	pos    float64

	in     []float32
	inPos  int
	inLen  int
	srcEOF bool

	lowpass bool
	lpState []float32
}

const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		in:       make([]float32, 4096-4096%max(channels, 1)),
		lpState:  make([]float32, channels),
	}
	r.lowpass = r.step > 1.0

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inLen = n - n%r.channels
		r.inPos = 0

		switch {
		case err == io.EOF:
			r.srcEOF = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		case n == 0:
			r.srcEOF = true
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass {
		for c := range r.channels {
			dst[c] = lowpassAlpha*dst[c] + (1-lowpassAlpha)*r.lpState[c]
			r.lpState[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	// Seed the filter with the first frame to avoid a warm-up transient.
	if r.lowpass {
		r.lowpass = false
		ok, err := r.pull(r.window[1])
		r.lowpass = true
		if err != nil {
			return err
		}
		if !ok {
			return io.EOF
		}
		copy(r.lpState, r.window[1])
	} else {
		ok, err := r.pull(r.window[1])
		if err != nil {
			return err
		}
		if !ok {
			return io.EOF
		}
	}

	copy(r.window[0], r.window[1])
	r.real[0], r.real[1] = false, true

	for i := 2; i < 4; i++ {
		ok, err := r.pull(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.real[i] = ok
	}

	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:3], r.window[1:])
	copy(r.real[:3], r.real[1:])
	r.window[3] = first

	ok, err := r.pull(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.real[3] = ok

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written, err
			}
		}

		// The last source frame is only reached exactly, never interpolated past.
		if !r.real[1] || (!r.real[2] && r.pos > 0) {
			return written, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	return written, nil
}
