package cell

import (
	"github.com/dshills/termgrid/style"
)

// Cell represents a single terminal grid cell.
type Cell struct {
	// Rune is the character to display.
	// A value of 0 indicates a continuation cell (for wide characters).
	Rune rune

	// Width is the display width of this cell.
	// 0 for continuation cells, 1 for normal chars, 2 for wide CJK chars.
	Width int

	// Style is the visual style for this cell.
	Style style.Style
}

// Empty returns an empty cell with default style.
func Empty() Cell {
	return Cell{
		Rune:  ' ',
		Width: 1,
		Style: style.Default(),
	}
}

// New creates a cell with the given rune and default style.
func New(r rune) Cell {
	return Cell{
		Rune:  r,
		Width: RuneWidth(r),
		Style: style.Default(),
	}
}

// NewStyled creates a cell with the given rune and style.
func NewStyled(r rune, st style.Style) Cell {
	return Cell{
		Rune:  r,
		Width: RuneWidth(r),
		Style: st,
	}
}

// Continuation returns a continuation cell filling the second
// column of a wide character.
func Continuation() Cell {
	return Cell{Style: style.Default()}
}

// WithStyle returns a copy of the cell with the given style.
func (c Cell) WithStyle(st style.Style) Cell {
	c.Style = st
	return c
}

// IsContinuation returns true if this is the second cell of a
// wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune &&
		c.Width == other.Width &&
		c.Style.Equals(other.Style)
}

// FromString creates cells from a string, inserting a continuation
// cell after every wide character. Zero-width runes are skipped.
func FromString(s string, st style.Style) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		width := RuneWidth(r)
		if width == 0 {
			continue
		}
		cells = append(cells, Cell{Rune: r, Width: width, Style: st})
		if width == 2 {
			cells = append(cells, Cell{Style: st})
		}
	}
	return cells
}

// String converts cells back to a string, skipping continuation cells.
func String(cells []Cell) string {
	runes := make([]rune, 0, len(cells))
	for _, c := range cells {
		if !c.IsContinuation() && c.Rune != 0 {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}
