// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"bytes"
	"fmt"

	"github.com/ik5/padbx/audio"
	"github.com/ik5/padbx/formats"
)

// Decoder turns a complete payload into a Buffer.
type Decoder interface {
	Decode(raw []byte) (*audio.Buffer, error)
}

// RegistryDecoder picks a format decoder by sniffing the payload and drains
// the resulting stream into a Buffer.
type RegistryDecoder struct {
	registry *audio.Registry
}

// NewDecoder returns a RegistryDecoder over r, or over every bundled
// format when r is nil.
func NewDecoder(r *audio.Registry) *RegistryDecoder {
	if r == nil {
		r = formats.NewRegistry()
	}
	return &RegistryDecoder{registry: r}
}

func (d *RegistryDecoder) Decode(raw []byte) (*audio.Buffer, error) {
	format, dec, ok := d.registry.Detect(raw[:min(len(raw), audio.SniffLen)])
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, audio.ErrUnknownFormat)
	}

	src, err := dec.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailure, format, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailure, format, err)
	}
	if buf.Length() == 0 {
		return nil, fmt.Errorf("%w: %s: no audio frames", ErrDecodeFailure, format)
	}

	return buf, nil
}
