// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
)

// mockSource generates frames from a waveform function.
// With lateEOF set it reports end of stream as a separate (0, io.EOF) read,
// the way go-audio based decoders do.
type mockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	lateEOF    bool
	failAt     int // frame index at which ReadSamples fails, 0 disables
	closed     bool
	waveform   func(frame, channel int) float32
}

var errMockRead = errors.New("mock read failure")

func newMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func newSilentSource(sampleRate, channels, frames int) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

func newSineSource(sampleRate, channels, frames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(frame) / float64(sampleRate)))
	})
}

func newConstantSource(sampleRate, channels, frames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// newRampSource yields frame/frames on every channel, offset by channel*0.1.
func newRampSource(sampleRate, channels, frames int) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		return float32(frame)/float32(frames) + float32(channel)*0.1
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAt > 0 && m.pos >= m.failAt {
		return 0, errMockRead
	}
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.pos)
	if m.failAt > 0 {
		count = min(count, m.failAt-m.pos)
	}

	for f := range count {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.pos+f, c)
		}
	}
	m.pos += count

	if m.pos >= m.frames && !m.lateEOF {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}

// drain reads src until io.EOF and returns everything it produced.
func drain(src Source, chunk int) ([]float32, error) {
	var out []float32
	buf := make([]float32, chunk)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, nil
		}
	}
}
