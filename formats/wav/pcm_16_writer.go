// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// header is the canonical 44-byte RIFF/WAVE PCM header.
type header struct {
	RiffID        [4]byte
	RiffSize      uint32
	WaveID        [4]byte
	FmtID         [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataID        [4]byte
	DataSize      uint32
}

const headerSize = 44

func newHeader(sampleRate, channels, samples int) header {
	const bytesPerSample = 2

	dataSize := uint32(samples * bytesPerSample)
	return header{
		RiffID:        [4]byte{'R', 'I', 'F', 'F'},
		RiffSize:      headerSize - 8 + dataSize,
		WaveID:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   formatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * channels * bytesPerSample),
		BlockAlign:    uint16(channels * bytesPerSample),
		BitsPerSample: 16,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return WritePCM16(w, sampleRate, 1, samples)
}

// WritePCM16 writes interleaved 16-bit PCM with the given channel count.
// len(samples) should be a multiple of channels.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if err := binary.Write(w, binary.LittleEndian, newHeader(sampleRate, channels, len(samples))); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192

	buf := make([]byte, 2*min(len(samples), chunkSize))
	for len(samples) > 0 {
		chunk := samples[:min(len(samples), chunkSize)]
		samples = samples[len(chunk):]

		out := buf[:2*len(chunk)]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
