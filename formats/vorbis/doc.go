// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis through github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//
// Samples arrive as float32 already, so no scaling happens. Decoder
// implements audio.Sniffer and claims payloads beginning with an Ogg page.
package vorbis
