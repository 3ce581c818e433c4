// SPDX-License-Identifier: EPL-2.0

package sequence

import (
	"slices"
	"strings"
	"testing"
)

func TestProject(t *testing.T) {
	t.Parallel()

	type cell struct{ row, col int }

	tests := []struct {
		name  string
		notes []Note
		want  []cell
	}{
		{name: "empty", notes: nil},
		{name: "single note", notes: []Note{{TimeOffset: 0, Length: 4, Num: 0}}, want: []cell{{7, 0}}},
		{
			name:  "shared value",
			notes: []Note{{TimeOffset: 0, Length: 4, Num: 0}, {TimeOffset: 0, Length: 4, Num: 0}},
			want:  []cell{{7, 0}},
		},
		{
			name: "spread over time",
			notes: []Note{
				{TimeOffset: 0, Length: 1, Num: 60},
				{TimeOffset: 2, Length: 1, Num: 61},
				{TimeOffset: 4, Length: 1, Num: 62},
				{TimeOffset: 7, Length: 1, Num: 67},
			},
			// total 8: columns 0, 2, 4, 7; rows 7-(n%8)
			want: []cell{{3, 0}, {2, 2}, {1, 4}, {4, 7}},
		},
		{
			name:  "span below one",
			notes: []Note{{TimeOffset: 0.5, Length: 0.25, Num: 3}},
			// total clamps to 1, column floor(0.5*8)
			want: []cell{{4, 4}},
		},
		{
			name:  "negative pitch clamps",
			notes: []Note{{TimeOffset: 0, Length: 1, Num: -3}},
			want:  []cell{{7, 0}},
		},
		{
			name:  "note ending last lands in column 7",
			notes: []Note{{TimeOffset: 15, Length: 0, Num: 8}, {TimeOffset: 0, Length: 1, Num: 8}},
			want:  []cell{{7, 0}, {7, 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := Project(tt.notes)
			if len(g.Cells()) != 64 {
				t.Fatalf("grid has %d cells, want 64", len(g.Cells()))
			}
			if g.Count() != len(tt.want) {
				t.Errorf("Count() = %d, want %d\n%s", g.Count(), len(tt.want), g)
			}
			for _, c := range tt.want {
				if !g.Active(c.row, c.col) {
					t.Errorf("cell (%d, %d) inactive\n%s", c.row, c.col, g)
				}
			}
		})
	}
}

func TestProject_Deterministic(t *testing.T) {
	t.Parallel()

	notes := []Note{{TimeOffset: 1, Length: 2, Num: 5}, {TimeOffset: 3.5, Length: 1, Num: 12}}
	if Project(notes) != Project(notes) {
		t.Error("Project() differs between calls")
	}
}

func TestGrid_Accessors(t *testing.T) {
	t.Parallel()

	g := Project([]Note{
		{TimeOffset: 0, Length: 1, Num: 0},
		{TimeOffset: 0, Length: 1, Num: 3},
		{TimeOffset: 1, Length: 1, Num: 1},
	})

	if got := g.Column(0); !slices.Equal(got, []int{4, 7}) {
		t.Errorf("Column(0) = %v, want [4 7]", got)
	}
	if g.Active(-1, 0) || g.Active(0, 8) {
		t.Error("Active() outside the grid = true")
	}

	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	if len(lines) != Size {
		t.Fatalf("String() has %d lines, want %d", len(lines), Size)
	}
	if lines[7] != "#......." || lines[6] != "....#..." || lines[4] != "#......." || lines[0] != "........" {
		t.Errorf("String() =\n%s", g)
	}
}

func BenchmarkProject(b *testing.B) {
	notes := make([]Note, 256)
	for i := range notes {
		notes[i] = Note{TimeOffset: float64(i), Length: 1, Num: 36 + i%24}
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = Project(notes)
	}
}
