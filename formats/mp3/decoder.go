// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/padbx/audio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const channels = 2

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	carry      int // bytes of an incomplete frame left at the start of buf
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.carry])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.carry:])
	n += s.carry

	// only whole stereo frames leave; the rest waits for the next read
	whole := n - n%(2*channels)
	for i := range whole / 2 {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}
	s.carry = copy(s.buf, s.buf[whole:n])

	if err != nil && err != io.EOF {
		return whole / 2, fmt.Errorf("%w", err)
	}
	if err == io.EOF || (n == 0 && s.carry == 0) {
		return whole / 2, io.EOF
	}

	return whole / 2, nil
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

// Sniff accepts an ID3v2 tag or a bare MPEG audio frame sync.
func (Decoder) Sniff(header []byte) bool {
	if len(header) >= 3 && string(header[:3]) == "ID3" {
		return true
	}
	// 11 sync bits, layer bits 01 (Layer III)
	return len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0 && header[1]&0x06 == 0x02
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
