package termgrid

import "github.com/quillback/termgrid/textwidth"

type fillKind int

const (
	fillSpaces fillKind = iota
	fillText
)

// Filling is the gap between adjacent columns in a row: either a uniform
// number of spaces or a literal separator string. One filling applies to
// the whole grid.
type Filling struct {
	kind      fillKind
	spaces    int
	text      string
	textWidth int
}

// SpaceFill separates columns with n spaces.
func SpaceFill(n int) Filling {
	return Filling{kind: fillSpaces, spaces: n}
}

// TextFill separates columns with the literal string sep. The separator's
// display width is measured here, once, not on every query.
func TextFill(sep string) Filling {
	return Filling{kind: fillText, text: sep, textWidth: textwidth.String(sep)}
}

// width is the number of terminal columns the filling occupies between two
// adjacent columns.
func (f Filling) width() int {
	if f.kind == fillText {
		return f.textWidth
	}
	return f.spaces
}
