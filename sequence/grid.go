// SPDX-License-Identifier: EPL-2.0

package sequence

import (
	"math"
	"strings"

	"github.com/ik5/padbx/utils"
)

// Size is the number of rows and of columns of a Grid.
const Size = 8

// Note is one note of a persisted sequence.
type Note struct {
	TimeOffset float64 `json:"timeOffset"`
	Length     float64 `json:"length"`
	Num        int     `json:"num"`
}

// Grid is the projected step pattern. Row 7 holds pitch class 0 and
// column 0 the start of the sequence.
type Grid struct {
	cells [Size * Size]bool
}

// Project quantizes notes onto a Grid. The time span is the latest note
// end, at least 1.
func Project(notes []Note) Grid {
	var g Grid

	total := 1.0
	for _, n := range notes {
		total = max(total, n.TimeOffset+n.Length)
	}

	for _, n := range notes {
		col := utils.Clamp(int(math.Floor(n.TimeOffset/total*Size)), 0, Size-1)
		// truncated remainder: negative pitches land past row 7 and clamp
		row := utils.Clamp(Size-1-n.Num%Size, 0, Size-1)
		g.cells[row*Size+col] = true
	}

	return g
}

// Active reports whether the cell at row, col is set. Cells outside the
// grid are inactive.
func (g Grid) Active(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	return g.cells[row*Size+col]
}

// Cells returns every cell, row major.
func (g Grid) Cells() [Size * Size]bool {
	return g.cells
}

// Column returns the active rows of col, top to bottom.
func (g Grid) Column(col int) []int {
	var rows []int
	for row := range Size {
		if g.Active(row, col) {
			rows = append(rows, row)
		}
	}
	return rows
}

// Count is the number of active cells.
func (g Grid) Count() int {
	n := 0
	for _, on := range g.cells {
		if on {
			n++
		}
	}
	return n
}

// String draws the grid, one line per row, '#' for active cells.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(Size * (Size + 1))

	for row := range Size {
		for col := range Size {
			if g.Active(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
