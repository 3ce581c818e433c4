// SPDX-License-Identifier: EPL-2.0

package midiin

import (
	"errors"
	"fmt"
	"log/slog"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// DefaultBase is the note of the first pad: C1, where most pad
// controllers start.
const DefaultBase = 36

var ErrPortNotFound = errors.New("midi input port not found")

// PadFunc receives a pad hit and its velocity.
type PadFunc func(pad int, velocity uint8)

// PadForNote maps key to a pad when it falls in [base, base+pads).
func PadForNote(key uint8, base, pads int) (int, bool) {
	pad := int(key) - base
	if pad < 0 || pad >= pads {
		return 0, false
	}
	return pad, true
}

// Ports lists the names of the input ports the registered driver sees.
func Ports() []string {
	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// Port returns the input port named name.
func Port(name string) (drivers.In, error) {
	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPortNotFound, name)
}

// Handler returns the message callback used by Listen. Note-on with zero
// velocity is a note-off and is ignored, so are keys outside the window.
func Handler(base, pads int, onPad PadFunc) func(midi.Message, int32) {
	return func(msg midi.Message, _ int32) {
		var channel, key, velocity uint8
		if !msg.GetNoteOn(&channel, &key, &velocity) || velocity == 0 {
			return
		}
		if pad, ok := PadForNote(key, base, pads); ok {
			onPad(pad, velocity)
		}
	}
}

// Listen starts delivering pad hits from in. The returned function stops
// listening.
func Listen(in drivers.In, base, pads int, onPad PadFunc, log *slog.Logger) (func(), error) {
	if log == nil {
		log = slog.Default()
	}

	stop, err := midi.ListenTo(in, Handler(base, pads, onPad),
		midi.HandleError(func(err error) {
			log.Warn("midi input error", "port", in.String(), "err", err)
		}))
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", in.String(), err)
	}

	log.Info("midi input open", "port", in.String(), "base", base, "pads", pads)
	return stop, nil
}
