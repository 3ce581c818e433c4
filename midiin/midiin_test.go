// SPDX-License-Identifier: EPL-2.0

package midiin

import (
	"slices"
	"testing"

	"gitlab.com/gomidi/midi/v2"
)

func TestPadForNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     uint8
		base    int
		pads    int
		want    int
		wantHit bool
	}{
		{name: "first pad", key: 36, base: 36, pads: 16, want: 0, wantHit: true},
		{name: "last pad", key: 51, base: 36, pads: 16, want: 15, wantHit: true},
		{name: "above window", key: 52, base: 36, pads: 16},
		{name: "below window", key: 35, base: 36, pads: 16},
		{name: "zero base", key: 3, base: 0, pads: 4, want: 3, wantHit: true},
		{name: "no pads", key: 36, base: 36, pads: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := PadForNote(tt.key, tt.base, tt.pads)
			if got != tt.want || ok != tt.wantHit {
				t.Errorf("PadForNote(%d, %d, %d) = (%d, %v), want (%d, %v)",
					tt.key, tt.base, tt.pads, got, ok, tt.want, tt.wantHit)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	type hit struct {
		pad      int
		velocity uint8
	}
	var hits []hit
	h := Handler(DefaultBase, 16, func(pad int, velocity uint8) {
		hits = append(hits, hit{pad, velocity})
	})

	for _, msg := range []midi.Message{
		midi.NoteOn(0, 36, 100),
		midi.NoteOn(9, 40, 64),
		midi.NoteOn(0, 41, 0),
		midi.NoteOff(0, 36),
		midi.NoteOn(0, 20, 90),
		midi.ControlChange(0, 36, 127),
		midi.NoteOn(1, 51, 1),
	} {
		h(msg, 0)
	}

	want := []hit{{0, 100}, {4, 64}, {15, 1}}
	if !slices.Equal(hits, want) {
		t.Errorf("hits = %v, want %v", hits, want)
	}
}
