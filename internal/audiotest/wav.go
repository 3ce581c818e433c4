// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAV builds a canonical RIFF/WAVE PCM file. samples are interleaved raw
// values for bitDepth: unsigned for 8-bit, signed otherwise.
func WAV(sampleRate, channels, bitDepth int, samples []int) []byte {
	bps := bitDepth / 8
	data := new(bytes.Buffer)

	for _, s := range samples {
		switch bps {
		case 1:
			data.WriteByte(byte(s))
		case 2:
			_ = binary.Write(data, binary.LittleEndian, int16(s))
		case 3:
			data.Write([]byte{byte(s), byte(s >> 8), byte(s >> 16)})
		default:
			_ = binary.Write(data, binary.LittleEndian, int32(s))
		}
	}

	return wrapRIFF(sampleRate, channels, bitDepth, data.Bytes(), nil)
}

// WAV16 builds a 16-bit PCM file.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	raw := make([]int, len(samples))
	for i, s := range samples {
		raw[i] = int(s)
	}
	return WAV(sampleRate, channels, 16, raw)
}

// WAVWithChunk builds a 16-bit PCM file with an extra chunk placed between
// fmt and data, the way editors store cue and LIST chunks.
func WAVWithChunk(sampleRate, channels int, samples []int16, id string, payload []byte) []byte {
	data := new(bytes.Buffer)
	_ = binary.Write(data, binary.LittleEndian, samples)

	extra := new(bytes.Buffer)
	extra.WriteString(id)
	_ = binary.Write(extra, binary.LittleEndian, uint32(len(payload)))
	extra.Write(payload)
	if len(payload)%2 == 1 {
		extra.WriteByte(0)
	}

	return wrapRIFF(sampleRate, channels, 16, data.Bytes(), extra.Bytes())
}

// ToneWAV renders a mono 16-bit sine of the given length in frames.
func ToneWAV(sampleRate, frames int, freq, amplitude float64) []byte {
	samples := make([]int16, frames)
	for i := range samples {
		v := amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		samples[i] = int16(v * 32767)
	}
	return WAV16(sampleRate, 1, samples)
}

func wrapRIFF(sampleRate, channels, bitDepth int, pcm, extra []byte) []byte {
	bps := bitDepth / 8
	out := new(bytes.Buffer)

	out.WriteString("RIFF")
	_ = binary.Write(out, binary.LittleEndian, uint32(4+24+len(extra)+8+len(pcm)))
	out.WriteString("WAVE")

	out.WriteString("fmt ")
	_ = binary.Write(out, binary.LittleEndian, struct {
		Size          uint32
		Format        uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}{
		Size:          16,
		Format:        1,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * channels * bps),
		BlockAlign:    uint16(channels * bps),
		BitsPerSample: uint16(bitDepth),
	})

	out.Write(extra)

	out.WriteString("data")
	_ = binary.Write(out, binary.LittleEndian, uint32(len(pcm)))
	out.Write(pcm)

	return out.Bytes()
}
