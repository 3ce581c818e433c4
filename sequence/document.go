// SPDX-License-Identifier: EPL-2.0

package sequence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// FileName is the sequence document inside a kit directory.
	FileName = "sequence.json"

	DefaultBPM = 120
)

var ErrInvalidDocument = errors.New("invalid sequence document")

type Pattern struct {
	Notes []Note `json:"notes"`
}

type NoteSequence struct {
	Pattern Pattern `json:"pattern"`
}

type Sequence struct {
	NoteSequence NoteSequence `json:"noteSequence"`
}

// Notes returns the notes of the sequence.
func (s Sequence) Notes() []Note {
	return s.NoteSequence.Pattern.Notes
}

// Document is the parsed sequence.json.
type Document struct {
	BPM            int        `json:"bpm"`
	CurrSequenceID int        `json:"currSequenceId"`
	Sequences      []Sequence `json:"sequences"`
}

func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// Load reads the sequence document at path. The document is optional: a
// missing file yields a nil document and no error.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// LoadDir loads the sequence document of the kit directory dir.
func LoadDir(dir string) (*Document, error) {
	return Load(filepath.Join(dir, FileName))
}

// Tempo is the document tempo in beats per minute, DefaultBPM when unset.
func (d *Document) Tempo() int {
	if d == nil || d.BPM <= 0 {
		return DefaultBPM
	}
	return d.BPM
}

// Sequence returns sequence id, or false when there is none.
func (d *Document) Sequence(id int) (Sequence, bool) {
	if d == nil || id < 0 || id >= len(d.Sequences) {
		return Sequence{}, false
	}
	return d.Sequences[id], true
}

// Current returns the selected sequence.
func (d *Document) Current() (Sequence, bool) {
	if d == nil {
		return Sequence{}, false
	}
	return d.Sequence(d.CurrSequenceID)
}

// Projection projects sequence id. A missing sequence projects as an
// empty grid.
func (d *Document) Projection(id int) Grid {
	s, _ := d.Sequence(id)
	return Project(s.Notes())
}
