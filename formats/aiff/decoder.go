// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/padbx/audio"
)

// aiffReader is the part of aiff.Decoder the source needs.
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps aiff.Decoder as an audio.Source.
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	fullScale  float32
	intBuf     *goaudio.IntBuffer
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, want)}
	}
	s.intBuf.Data = s.intBuf.Data[:want]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	n -= n % s.channels
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(float64(v) / float64(s.fullScale))
	}

	if n == 0 || err == io.EOF {
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

// fullScale returns the magnitude of the most negative sample at bitDepth.
// AIFF stores signed big-endian samples at every depth.
func fullScale(bitDepth int) (float32, bool) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(uint64(1) << (bitDepth - 1)), true
	default:
		return 0, false
	}
}

// Decoder reads AIFF and uncompressed AIFC.
type Decoder struct{}

// Sniff reports whether header starts a FORM/AIFF or FORM/AIFC container.
func (Decoder) Sniff(header []byte) bool {
	if len(header) < 12 || !bytes.Equal(header[0:4], []byte("FORM")) {
		return false
	}
	kind := string(header[8:12])
	return kind == "AIFF" || kind == "AIFC"
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	scale, ok := fullScale(int(dec.BitDepth))
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		fullScale:  scale,
	}, nil
}
