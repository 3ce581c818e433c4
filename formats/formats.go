// SPDX-License-Identifier: EPL-2.0

// Package formats wires the bundled decoders into a single registry.
package formats

import (
	"github.com/ik5/padbx/audio"
	"github.com/ik5/padbx/formats/aiff"
	"github.com/ik5/padbx/formats/mp3"
	"github.com/ik5/padbx/formats/vorbis"
	"github.com/ik5/padbx/formats/wav"
)

// NewRegistry returns a registry holding every bundled decoder. MP3 is
// registered last because a bare frame sync is the weakest signature.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("mp3", mp3.Decoder{})

	return r
}
