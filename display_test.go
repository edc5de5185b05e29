package termgrid

import (
	"strings"
	"testing"
)

// display builds a Display directly, bypassing the fit search, so the
// rendering rules can be checked against hand-picked dimensions.
func display(cells []Cell, filling Filling, direction Direction, numLines int, widths []int) *Display {
	return &Display{
		cells:     cells,
		filling:   filling,
		direction: direction,
		dims:      dimensions{numLines: numLines, widths: widths},
	}
}

func TestDisplay_String_PaddingRules(t *testing.T) {
	left := []Cell{
		{Contents: "ab", Width: 2},
		{Contents: "c", Width: 1},
	}
	right := []Cell{
		{Contents: "ab", Width: 2, Alignment: AlignRight},
		{Contents: "c", Width: 1, Alignment: AlignRight},
	}

	tests := []struct {
		name    string
		cells   []Cell
		filling Filling
		want    string
	}{
		{
			// Cell padded to column width plus the gap; the last
			// column gets no trailing spaces.
			name:    "spaces left",
			cells:   left,
			filling: SpaceFill(2),
			want:    "ab    c\n",
		},
		{
			// Left padding to column width, then the gap; the last
			// column is left-padded only.
			name:    "spaces right",
			cells:   right,
			filling: SpaceFill(2),
			want:    "  ab    c\n",
		},
		{
			name:    "separator left",
			cells:   left,
			filling: TextFill(" | "),
			want:    "ab   | c\n",
		},
		{
			name:    "separator right",
			cells:   right,
			filling: TextFill(" | "),
			want:    "  ab |   c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := display(tt.cells, tt.filling, RowMajor, 1, []int{4, 3})
			if got := d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplay_String_ShortLastRow(t *testing.T) {
	cells := []Cell{
		{Contents: "a", Width: 1},
		{Contents: "b", Width: 1},
		{Contents: "c", Width: 1},
		{Contents: "d", Width: 1},
		{Contents: "e", Width: 1},
	}

	tests := []struct {
		name      string
		direction Direction
		want      string
	}{
		{
			// The fifth cell lands in the middle column of the
			// second row, so it keeps its gap; the empty slot after
			// it emits nothing.
			name:      "row major",
			direction: RowMajor,
			want:      "a b c\nd e \n",
		},
		{
			name:      "column major",
			direction: ColumnMajor,
			want:      "a c e\nb d \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := display(cells, SpaceFill(1), tt.direction, 2, []int{1, 1, 1})
			if got := d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The two directions place every cell exactly once; only the positions
// transpose.
func TestDisplay_String_DirectionsCoverEveryCell(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	cells := make([]Cell, len(names))
	for i, name := range names {
		cells[i] = Cell{Contents: name, Width: 1}
	}

	for _, direction := range []Direction{RowMajor, ColumnMajor} {
		d := display(cells, SpaceFill(1), direction, 2, []int{1, 1, 1})
		rendered := d.String()
		for _, name := range names {
			if got := strings.Count(rendered, name); got != 1 {
				t.Errorf("direction %v: %q appears %d times in %q, want 1",
					direction, name, got, rendered)
			}
		}
	}
}

func TestDisplay_Width(t *testing.T) {
	tests := []struct {
		name    string
		widths  []int
		filling Filling
		want    int
	}{
		{name: "no columns", widths: nil, filling: SpaceFill(2), want: 0},
		{name: "one column", widths: []int{7}, filling: SpaceFill(2), want: 7},
		{name: "spaces between three columns", widths: []int{3, 3, 5}, filling: SpaceFill(2), want: 15},
		{name: "separator between two columns", widths: []int{1, 2}, filling: TextFill(" | "), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := display(nil, tt.filling, RowMajor, 0, tt.widths)
			if got := d.Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDisplay_IsComplete(t *testing.T) {
	if d := display(nil, SpaceFill(1), RowMajor, 0, nil); !d.IsComplete() {
		t.Error("IsComplete() with no columns = false, want true")
	}
	if d := display(nil, SpaceFill(1), RowMajor, 1, []int{3, 2}); !d.IsComplete() {
		t.Error("IsComplete() with positive widths = false, want true")
	}
	if d := display(nil, SpaceFill(1), RowMajor, 1, []int{3, 0}); d.IsComplete() {
		t.Error("IsComplete() with a zero-width column = true, want false")
	}
}
