// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer holds fully decoded PCM, one slice per channel.
// A Buffer is immutable once built: callers must treat Channel slices
// as read-only.
type Buffer struct {
	sampleRate int
	data       [][]float32
}

// NewBuffer builds a Buffer from per-channel sample slices. The slices are
// adopted, not copied.
func NewBuffer(sampleRate int, channels ...[]float32) (*Buffer, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	length := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != length {
			return nil, ErrMismatchedChannels
		}
	}

	return &Buffer{sampleRate: sampleRate, data: channels}, nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return len(b.data) }

// Length is the number of frames per channel.
func (b *Buffer) Length() int { return len(b.data[0]) }

// Channel returns the samples of channel c.
func (b *Buffer) Channel(c int) []float32 { return b.data[c] }

func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(b.Length()) * int64(time.Second) / int64(b.sampleRate))
}

// Reverse returns a new Buffer with every channel in reverse order.
// The source is left untouched and no storage is shared.
func Reverse(b *Buffer) *Buffer {
	out := &Buffer{
		sampleRate: b.sampleRate,
		data:       make([][]float32, len(b.data)),
	}

	for c, in := range b.data {
		rev := make([]float32, len(in))
		for i, j := 0, len(in)-1; j >= 0; i, j = i+1, j-1 {
			rev[i] = in[j]
		}
		out.data[c] = rev
	}

	return out
}

// ReadAll drains src into a Buffer, de-interleaving as it goes.
// src is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	data := make([][]float32, channels)
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels
		for f := range frames {
			for c := range channels {
				data[c] = append(data[c], buf[f*channels+c])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// Some decoders report end of stream as (0, nil).
			break
		}
	}

	return &Buffer{sampleRate: src.SampleRate(), data: data}, nil
}

// BufferReader streams a Buffer as an interleaved Source.
type BufferReader struct {
	buf *Buffer
	pos int
}

func NewBufferReader(b *Buffer) *BufferReader {
	return &BufferReader{buf: b}
}

func (r *BufferReader) SampleRate() int { return r.buf.sampleRate }
func (r *BufferReader) Channels() int   { return len(r.buf.data) }
func (r *BufferReader) BufSize() int    { return 4096 }
func (r *BufferReader) Close() error    { return nil }

func (r *BufferReader) ReadSamples(dst []float32) (int, error) {
	channels := len(r.buf.data)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := r.buf.Length() - r.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = r.buf.data[c][r.pos+f]
		}
	}
	r.pos += frames

	if r.pos >= r.buf.Length() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
