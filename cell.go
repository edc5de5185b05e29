package termgrid

import "github.com/quillback/termgrid/textwidth"

// Alignment controls which side of its column a cell's text sticks to.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Cell is a single item to place in a grid: its text, the number of
// terminal columns that text occupies, and its alignment.
//
// Width is measured once at construction and cached; the fit search probes
// it many times. Callers that measure display width themselves (for
// example to skip ANSI escape sequences) can fill in the struct directly,
// as long as Width matches what the terminal will actually draw.
type Cell struct {
	Contents  string
	Width     int
	Alignment Alignment
}

// NewCell builds a left-aligned cell, measuring the display width of s.
func NewCell(s string) Cell {
	return Cell{Contents: s, Width: textwidth.String(s)}
}
