// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III through github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the stream's sample rate;
// mono streams are duplicated onto both channels.
//
//	src, err := mp3.Decoder{}.Decode(f)
//
// Decoder implements audio.Sniffer: a payload is claimed when it starts with
// an ID3v2 tag or a Layer III frame sync.
package mp3
