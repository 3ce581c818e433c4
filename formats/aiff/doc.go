// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and uncompressed AIFC through
// github.com/go-audio/aiff.
//
// Samples are signed big-endian integers at 8, 16, 24 or 32 bits and are
// scaled to float32 in [-1.0, 1.0]:
//
//	src, err := aiff.Decoder{}.Decode(f)
//	buf, err := audio.ReadAll(src)
//
// Decoder implements audio.Sniffer and recognizes FORM containers of type
// AIFF or AIFC.
package aiff
