// Package backend provides the boundary adapters between the shaped
// rendering core and concrete output sinks: an in-memory double
// buffer honoring the exact-grid contract, and conversion into tcell
// styles for terminal frontends. The device write loop itself lives
// outside this module.
package backend

import (
	"github.com/dshills/termgrid/cell"
	"github.com/dshills/termgrid/segment"
)

// ScreenBuffer is a double-buffered cell grid with change tracking.
// It maintains two buffers: front (displayed) and back (drawing).
// On sync, it computes the diff and only reports changed cells.
type ScreenBuffer struct {
	width, height int
	front         [][]cell.Cell
	back          [][]cell.Cell
	dirty         [][]bool
	fullRedraw    bool
}

// NewScreenBuffer creates a screen buffer with the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	sb := &ScreenBuffer{
		width:      width,
		height:     height,
		fullRedraw: true,
	}
	sb.allocate()
	return sb
}

// allocate creates the internal buffers.
func (sb *ScreenBuffer) allocate() {
	sb.front = make([][]cell.Cell, sb.height)
	sb.back = make([][]cell.Cell, sb.height)
	sb.dirty = make([][]bool, sb.height)

	for y := 0; y < sb.height; y++ {
		sb.front[y] = make([]cell.Cell, sb.width)
		sb.back[y] = make([]cell.Cell, sb.width)
		sb.dirty[y] = make([]bool, sb.width)

		for x := 0; x < sb.width; x++ {
			sb.front[y][x] = cell.Empty()
			sb.back[y][x] = cell.Empty()
		}
	}
}

// Resize resizes the buffer, preserving content where possible.
func (sb *ScreenBuffer) Resize(width, height int) {
	if width == sb.width && height == sb.height {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	oldBack := sb.back
	oldWidth := sb.width
	oldHeight := sb.height

	sb.width = width
	sb.height = height
	sb.allocate()

	copyHeight := min(oldHeight, height)
	copyWidth := min(oldWidth, width)
	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			sb.back[y][x] = oldBack[y][x]
		}
	}

	sb.fullRedraw = true
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// SetCell sets a cell in the back buffer.
func (sb *ScreenBuffer) SetCell(x, y int, c cell.Cell) {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return
	}
	sb.back[y][x] = c
	sb.dirty[y][x] = true
}

// Cell returns a cell from the back buffer.
func (sb *ScreenBuffer) Cell(x, y int) cell.Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return cell.Empty()
	}
	return sb.back[y][x]
}

// FrontCell returns a cell from the front buffer (currently displayed).
func (sb *ScreenBuffer) FrontCell(x, y int) cell.Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return cell.Empty()
	}
	return sb.front[y][x]
}

// SetLine writes one shaped line into row y starting at column x.
// Text runs expand into cells with continuation cells after wide
// glyphs; break and control segments occupy nothing.
func (sb *ScreenBuffer) SetLine(x, y int, line segment.Line) {
	if y < 0 || y >= sb.height {
		return
	}
	col := x
	for _, seg := range line {
		if seg.Kind != segment.KindText {
			continue
		}
		for _, c := range cell.FromString(seg.Text, seg.Style) {
			if col >= sb.width {
				return
			}
			if col >= 0 {
				sb.back[y][col] = c
				sb.dirty[y][col] = true
			}
			col++
		}
	}
}

// SetGrid writes a shaped grid (as produced by segment.SetShape) into
// the buffer with its top-left corner at (x, y).
func (sb *ScreenBuffer) SetGrid(x, y int, lines []segment.Line) {
	for i, line := range lines {
		sb.SetLine(x, y+i, line)
	}
}

// RowString returns the visible text of one back-buffer row.
func (sb *ScreenBuffer) RowString(y int) string {
	if y < 0 || y >= sb.height {
		return ""
	}
	return cell.String(sb.back[y])
}

// Clear fills the back buffer with empty cells.
func (sb *ScreenBuffer) Clear() {
	empty := cell.Empty()
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			sb.back[y][x] = empty
			sb.dirty[y][x] = true
		}
	}
}

// DiffChange represents a cell change for synchronization.
type DiffChange struct {
	X, Y int
	Cell cell.Cell
}

// ComputeDiff returns the changes needed to update the display.
// Returns nil if no changes are needed.
func (sb *ScreenBuffer) ComputeDiff() []DiffChange {
	var changes []DiffChange
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			if sb.fullRedraw || sb.dirty[y][x] {
				if sb.fullRedraw || !sb.back[y][x].Equals(sb.front[y][x]) {
					changes = append(changes, DiffChange{X: x, Y: y, Cell: sb.back[y][x]})
				}
			}
		}
	}
	return changes
}

// Sync copies the back buffer to the front buffer and clears dirty
// flags. Call this after applying changes to the output device.
func (sb *ScreenBuffer) Sync() {
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			sb.front[y][x] = sb.back[y][x]
			sb.dirty[y][x] = false
		}
	}
	sb.fullRedraw = false
}
