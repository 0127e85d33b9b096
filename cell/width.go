// Package cell provides display-cell width measurement and boundary-safe
// truncation for terminal content.
//
// Terminal character grids are measured in cells: most glyphs occupy one
// cell, CJK and other wide glyphs occupy two, and control characters or
// combining marks occupy none. All width math in the rest of the module
// goes through this package.
package cell

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the display width of a rune.
// Returns 0 for control characters and zero-width combiners,
// 2 for wide (CJK) characters, and 1 for everything else.
// Unknown code points default to width 1 so malformed input never fails.
func RuneWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// Measure returns the total display width of a string in cells.
// The string is walked by grapheme cluster so combining sequences
// count as their base character's width.
func Measure(s string) int {
	if s == "" {
		return 0
	}
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		total += clusterWidth(g.Runes())
	}
	return total
}

// Truncate returns the longest prefix of s that fits within maxCells,
// along with the number of cells it consumes. The prefix always ends on
// a whole grapheme boundary: if the next cluster is wide and only one
// cell of budget remains, it is excluded rather than split.
// maxCells <= 0 yields an empty prefix.
func Truncate(maxCells int, s string) (string, int) {
	if maxCells <= 0 || s == "" {
		return "", 0
	}

	used := 0
	end := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := clusterWidth(g.Runes())
		if used+w > maxCells {
			break
		}
		used += w
		_, end = g.Positions()
	}
	return s[:end], used
}

// Skip returns the remainder of s after dropping exactly cells of
// display width, plus the number of pad cells owed when a wide glyph
// straddled the boundary and had to be dropped whole. The remainder
// always starts on a whole grapheme boundary.
func Skip(cells int, s string) (rest string, pad int) {
	if cells <= 0 {
		return s, 0
	}
	dropped := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		dropped += clusterWidth(g.Runes())
		if dropped >= cells {
			_, end := g.Positions()
			return s[end:], dropped - cells
		}
	}
	return "", 0
}

// clusterWidth returns the display width of one grapheme cluster.
// The widest rune in the cluster decides: a combining mark contributes
// nothing, a wide base makes the whole cluster wide.
func clusterWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		if rw := RuneWidth(r); rw > w {
			w = rw
		}
	}
	return w
}
