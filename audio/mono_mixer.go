// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds every channel of src into one by averaging.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, max(needed, 8192))
	}
	in := m.tmp[:needed]

	n, err := m.src.ReadSamples(in)
	frames := n / channels
	if frames == 0 {
		return 0, err
	}

	if channels == 2 {
		for f := range frames {
			dst[f] = (in[2*f] + in[2*f+1]) * 0.5
		}
		return frames, err
	}

	scale := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, s := range in[f*channels : (f+1)*channels] {
			sum += s
		}
		dst[f] = sum * scale
	}

	return frames, err
}
