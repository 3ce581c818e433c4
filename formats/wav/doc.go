// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE PCM and writes 16-bit PCM files.
//
// Decoding goes through github.com/go-audio/wav, so files carrying LIST,
// cue or smpl chunks before the data chunk are accepted. Supported sample
// layouts are integer PCM at 8 (unsigned), 16, 24 and 32 bits, any channel
// count and any sample rate. IEEE float and compressed formats are rejected
// with ErrUnsupportedWavLayout.
//
//	src, err := wav.Decoder{}.Decode(bytes.NewReader(payload))
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // try another decoder
//	}
//
// Decoder also implements audio.Sniffer, so it can be picked from an
// audio.Registry by the first bytes of a payload.
//
// # Writing
//
// WriteWAV16 writes mono 16-bit PCM with a canonical 44-byte header;
// WritePCM16 does the same for interleaved multi-channel data:
//
//	err := wav.WriteWAV16(file, 22050, pcm)
package wav
