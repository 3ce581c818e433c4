// SPDX-License-Identifier: EPL-2.0

package kit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ik5/padbx/slot"
)

const (
	// FileName is the kit document inside a kit directory.
	FileName = "sampler.json"

	// PadCount is the number of pads a kit exposes.
	PadCount = 16
)

// Pad is one persisted pad entry.
type Pad struct {
	Pad      Number  `json:"pad"`
	SampleID *Number `json:"sampleId"`
	Vol      *Number `json:"vol"`
	Pitch    Number  `json:"pitch"`
	Pan      Number  `json:"pan"`
	OneShot  Flag    `json:"oneshot"`
	Looping  Flag    `json:"looping"`
	Reverse  Flag    `json:"reverse"`
}

// Config converts the entry to a slot configuration.
func (p Pad) Config() slot.Config {
	c := slot.Default(p.Pad.Int())
	if p.SampleID != nil {
		c.SampleID = slot.Sample(p.SampleID.Int())
	}
	if p.Vol != nil {
		c.Volume = p.Vol.Float()
	}
	c.Pitch = p.Pitch.Float()
	c.Pan = p.Pan.Float()
	c.OneShot = bool(p.OneShot)
	c.Loop = bool(p.Looping)
	c.Reverse = bool(p.Reverse)

	return c
}

type Metadata struct {
	OriginalPath string `json:"originalPath"`
}

// Sample is one catalog entry.
type Sample struct {
	ID       Number   `json:"id"`
	Metadata Metadata `json:"metadata"`
}

// Document is the parsed sampler.json.
type Document struct {
	Pads    []Pad    `json:"pads"`
	Samples []Sample `json:"samples"`
}

// Parse decodes a kit document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// Load reads and parses the kit document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// LoadDir loads the kit document of the kit directory dir.
func LoadDir(dir string) (*Document, error) {
	return Load(filepath.Join(dir, FileName))
}

// Configs converts every pad entry. A later entry for the same pad
// replaces an earlier one.
func (d *Document) Configs() []slot.Config {
	seen := make(map[int]int, len(d.Pads))
	out := make([]slot.Config, 0, len(d.Pads))

	for _, p := range d.Pads {
		c := p.Config()
		if i, ok := seen[c.SlotID]; ok {
			out[i] = c
			continue
		}
		seen[c.SlotID] = len(out)
		out = append(out, c)
	}

	return out
}

// SampleIDs returns the sorted unique catalog ids. When the catalog is
// empty it falls back to the ids the pads reference.
func (d *Document) SampleIDs() []int {
	ids := make([]int, 0, len(d.Samples))
	for _, s := range d.Samples {
		ids = append(ids, s.ID.Int())
	}

	if len(ids) == 0 {
		for _, p := range d.Pads {
			if p.SampleID != nil {
				ids = append(ids, p.SampleID.Int())
			}
		}
	}

	slices.Sort(ids)
	return slices.Compact(ids)
}

// Table builds a slot table holding every pad of the document plus
// defaults for the remaining pads up to PadCount.
func (d *Document) Table() *slot.Table {
	t := slot.NewTable(d.Configs()...)
	t.Ensure(PadCount)

	return t
}
