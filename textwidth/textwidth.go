// Package textwidth measures how many terminal columns a string occupies.
//
// Widths are counted per grapheme cluster, so combining marks add nothing
// and emoji and CJK characters take the two cells the terminal gives them.
// This is the measurement the terminal itself applies when drawing text,
// as opposed to byte or rune counts.
package textwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// String returns the number of terminal columns s occupies.
func String(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		// A cluster renders as a single glyph; the first rune with a
		// nonzero width is our best estimate of how wide that glyph is.
		for _, r := range g.Runes() {
			if w := runewidth.RuneWidth(r); w > 0 {
				width += w
				break
			}
		}
	}
	return width
}

// Rune returns the number of terminal columns a single rune occupies.
func Rune(r rune) int {
	return runewidth.RuneWidth(r)
}
