// SPDX-License-Identifier: EPL-2.0

package tone

import "math"

var semitones = map[string]int{
	"C": 0, "C#": 1, "D": 2, "D#": 3, "E": 4, "F": 5,
	"F#": 6, "G": 7, "G#": 8, "A": 9, "A#": 10, "B": 11,
}

var whiteKeys = [...]string{"C", "D", "E", "F", "G", "A", "B"}

// NoteFromName returns the MIDI note of name in octave; C4 is 60. Unknown
// names count as C.
func NoteFromName(name string, octave int) int {
	return (octave+1)*12 + semitones[name]
}

// FreqFromMIDI returns the equal-tempered frequency of a MIDI note, with
// A4 (69) at 440Hz.
func FreqFromMIDI(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// KeyNote maps the index of a white key, counted from C of octave, to its
// MIDI note.
func KeyNote(index, octave int) int {
	index = max(index, 0)
	return NoteFromName(whiteKeys[index%len(whiteKeys)], octave+index/len(whiteKeys))
}
