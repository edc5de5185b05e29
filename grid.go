// Package termgrid arranges text cells into a grid of rows and columns
// that fits a maximum display width, the way multi-column file listers lay
// out names in a terminal.
//
// Build a Grid with a Filling and a Direction, Add cells to it, then ask
// FitIntoWidth for the smallest number of rows the cells fit in. The
// result is a Display, which renders the aligned, padded text. Widths are
// display-column widths throughout (see the textwidth package), never byte
// or rune counts.
package termgrid

import "sort"

// Direction is the order cells are assigned to grid positions.
type Direction int

const (
	// RowMajor fills cells left to right, wrapping to the next row.
	RowMajor Direction = iota
	// ColumnMajor fills a column top to bottom before starting the next.
	ColumnMajor
)

// Grid collects cells along with the filling and direction to lay them
// out with. Cells are append-only; a Grid is not safe for concurrent Add.
type Grid struct {
	filling   Filling
	direction Direction

	cells []Cell

	// Aggregates kept in step with cells on every Add, so the fit
	// search never rescans the cell list for them.
	widestCell int
	widthSum   int
}

// New returns an empty grid that will lay cells out with the given
// filling and direction.
func New(filling Filling, direction Direction) *Grid {
	return &Grid{filling: filling, direction: direction}
}

// Add appends a cell to the grid.
func (g *Grid) Add(c Cell) {
	g.cells = append(g.cells, c)
	if c.Width > g.widestCell {
		g.widestCell = c.Width
	}
	g.widthSum += c.Width
}

// Reserve grows the cell capacity so that n cells can be added without
// reallocating. It has no effect on layout.
func (g *Grid) Reserve(n int) {
	if n > cap(g.cells) {
		cells := make([]Cell, len(g.cells), n)
		copy(cells, g.cells)
		g.cells = cells
	}
}

// CellCount returns the number of cells added so far.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// dimensions is one row/column partition: a row count and the width of
// each column.
type dimensions struct {
	numLines int
	widths   []int
}

// totalWidth is the rendered width of the partition: column widths plus
// one filling between each adjacent pair of columns.
func (d dimensions) totalWidth(fillWidth int) int {
	if len(d.widths) == 0 {
		return 0
	}
	total := fillWidth * (len(d.widths) - 1)
	for _, w := range d.widths {
		total += w
	}
	return total
}

// FitIntoWidth searches for the fewest rows whose columns fit within
// maximumWidth and returns the laid-out grid. The second return is false
// when no layout fits: either a single cell is already wider than
// maximumWidth, or no candidate row count leaves room for its columns.
// Callers are expected to treat that as a normal outcome and fall back to
// one cell per line.
//
// The Display keeps its own view of the cells taken now; cells added
// afterwards are not picked up until the next fit.
func (g *Grid) FitIntoWidth(maximumWidth int) (*Display, bool) {
	dims, ok := g.widthDimensions(maximumWidth)
	if !ok {
		return nil, false
	}
	return &Display{
		cells:     g.cells[:len(g.cells):len(g.cells)],
		filling:   g.filling,
		direction: g.direction,
		dims:      dims,
	}, true
}

func (g *Grid) widthDimensions(maximumWidth int) (dimensions, bool) {
	if g.widestCell > maximumWidth {
		// The widest cell on its own overflows the budget; no row
		// count can help.
		return dimensions{}, false
	}
	if len(g.cells) == 0 {
		return dimensions{numLines: 0}, true
	}
	if len(g.cells) == 1 {
		return dimensions{numLines: 1, widths: []int{g.cells[0].Width}}, true
	}

	maxLines := g.theoreticalMaxLines(maximumWidth)
	if maxLines == 1 {
		// Everything fits on one line, so every cell is a column of
		// exactly its own width.
		widths := make([]int, len(g.cells))
		for i, c := range g.cells {
			widths[i] = c.Width
		}
		return dimensions{numLines: 1, widths: widths}, true
	}

	fillWidth := g.filling.width()

	// Scan row counts downward, keeping the last candidate that fit.
	// The first candidate that does not fit ends the search; the one
	// before it is the answer.
	var best dimensions
	found := false
	for numLines := maxLines - 1; numLines >= 1; numLines-- {
		numColumns := divideRoundingUp(len(g.cells), numLines)

		// With this many columns the separators alone may already
		// overflow the budget; content cannot make that better.
		totalFillWidth := (numColumns - 1) * fillWidth
		if maximumWidth < totalFillWidth {
			continue
		}
		adjustedWidth := maximumWidth - totalFillWidth

		candidate := g.columnWidths(numLines, numColumns)
		sum := 0
		for _, w := range candidate.widths {
			sum += w
		}
		if sum < adjustedWidth {
			best = candidate
			found = true
		} else {
			return best, found
		}
	}
	return best, found
}

// theoreticalMaxLines bounds the fit search. Packing cells widest-first
// into one row, charging a filling width after every packed cell, gives a
// provisional column count; ceil(cellCount / that) is the most rows any
// layout is worth trying.
func (g *Grid) theoreticalMaxLines(maximumWidth int) int {
	widths := make([]int, len(g.cells))
	for i, c := range g.cells {
		widths[i] = c.Width
	}
	sort.Sort(sort.Reverse(sort.IntSlice(widths)))

	fillWidth := g.filling.width()
	numColumns := 0
	widthSoFar := 0
	for _, w := range widths {
		if widthSoFar+w > maximumWidth {
			break
		}
		numColumns++
		widthSoFar += w + fillWidth
	}
	// numColumns is at least 1: the widest cell passed the precheck.
	return divideRoundingUp(len(g.cells), numColumns)
}

// columnWidths computes the per-column widths for a candidate partition:
// each cell is assigned to a column by the grid's direction, and a column
// is as wide as the widest cell in it.
func (g *Grid) columnWidths(numLines, numColumns int) dimensions {
	widths := make([]int, numColumns)
	for i, c := range g.cells {
		var col int
		switch g.direction {
		case RowMajor:
			col = i % numColumns
		case ColumnMajor:
			col = i / numLines
		}
		if c.Width > widths[col] {
			widths[col] = c.Width
		}
	}
	return dimensions{numLines: numLines, widths: widths}
}

func divideRoundingUp(a, b int) int {
	return (a + b - 1) / b
}
