// SPDX-License-Identifier: EPL-2.0

package kit

import (
	"path"
	"slices"
	"strconv"
	"strings"
)

// Catalog answers label and navigation questions about the samples of a kit.
type Catalog struct {
	ids   []int
	paths map[int]string
}

func NewCatalog(d *Document) *Catalog {
	c := &Catalog{
		ids:   d.SampleIDs(),
		paths: make(map[int]string, len(d.Samples)),
	}
	for _, s := range d.Samples {
		c.paths[s.ID.Int()] = s.Metadata.OriginalPath
	}

	return c
}

// IDs returns the sample ids in cycling order.
func (c *Catalog) IDs() []int {
	return slices.Clone(c.ids)
}

// Label names a sample for display: "empty" for no sample, the file name
// of its original path, or "sampleId N" when nothing better is known.
func (c *Catalog) Label(id *int) string {
	if id == nil {
		return "empty"
	}

	fallback := "sampleId " + strconv.Itoa(*id)
	p, ok := c.paths[*id]
	if !ok {
		return fallback
	}

	// original paths may come from either platform
	p = strings.TrimRight(strings.ReplaceAll(p, `\`, "/"), "/")
	if p == "" {
		return fallback
	}

	return path.Base(p)
}

// Cycle moves delta steps from current through IDs, wrapping around.
// A nil or unknown current starts from the first id. It reports false
// when the catalog is empty.
func (c *Catalog) Cycle(current *int, delta int) (int, bool) {
	n := len(c.ids)
	if n == 0 {
		return 0, false
	}

	idx := 0
	if current != nil {
		idx = max(0, slices.Index(c.ids, *current))
	}

	return c.ids[((idx+delta)%n+n)%n], true
}
