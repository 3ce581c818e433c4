// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/padbx/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source needs.
// Read fills interleaved samples and reports how many it wrote.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	channels int
	bufSize  int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:want])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

// Sniff reports whether header starts an Ogg page.
func (Decoder) Sniff(header []byte) bool {
	return bytes.HasPrefix(header, []byte("OggS"))
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOggVorbis, err)
	}

	return &source{
		dec:      dec,
		channels: dec.Channels(),
		bufSize:  4096 - 4096%max(dec.Channels(), 1),
	}, nil
}
