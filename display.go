package termgrid

import "strings"

// Display is a grid fitted to a width, ready to render. It holds its own
// view of the cell sequence taken when the fit ran, so appending more
// cells to the Grid afterwards does not disturb an existing Display;
// refit to pick the new cells up. A Display is immutable and safe to read
// from multiple goroutines.
type Display struct {
	cells     []Cell
	filling   Filling
	direction Direction
	dims      dimensions
}

// Width returns the total rendered width: the column widths plus one
// filling between each adjacent pair of columns, or 0 with no columns.
func (d *Display) Width() int {
	return d.dims.totalWidth(d.filling.width())
}

// RowCount returns the number of lines the rendered grid occupies.
func (d *Display) RowCount() int {
	return d.dims.numLines
}

// IsComplete reports whether every column has positive width. A column
// with at least one cell is always positive, so this is only false for
// degenerate layouts.
func (d *Display) IsComplete() bool {
	for _, w := range d.dims.widths {
		if w <= 0 {
			return false
		}
	}
	return true
}

// String renders the grid, one line per row, each terminated by a line
// break, including the last.
func (d *Display) String() string {
	var sb strings.Builder
	numColumns := len(d.dims.widths)

	for y := 0; y < d.dims.numLines; y++ {
		for x := 0; x < numColumns; x++ {
			var num int
			switch d.direction {
			case RowMajor:
				num = y*numColumns + x
			case ColumnMajor:
				num = y + d.dims.numLines*x
			}

			// The last row can run out of cells before the last
			// column.
			if num >= len(d.cells) {
				continue
			}

			cell := d.cells[num]
			pad := d.dims.widths[x] - cell.Width

			if x == numColumns-1 {
				// The final column needs no trailing spaces
				// when left-aligned.
				if cell.Alignment == AlignRight {
					sb.WriteString(spaces(pad))
				}
				sb.WriteString(cell.Contents)
				continue
			}

			switch {
			case d.filling.kind == fillSpaces && cell.Alignment == AlignLeft:
				sb.WriteString(cell.Contents)
				sb.WriteString(spaces(pad + d.filling.spaces))
			case d.filling.kind == fillSpaces && cell.Alignment == AlignRight:
				sb.WriteString(spaces(pad))
				sb.WriteString(cell.Contents)
				sb.WriteString(spaces(d.filling.spaces))
			default:
				if cell.Alignment == AlignRight {
					sb.WriteString(spaces(pad))
					sb.WriteString(cell.Contents)
				} else {
					sb.WriteString(cell.Contents)
					sb.WriteString(spaces(pad))
				}
				sb.WriteString(d.filling.text)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
