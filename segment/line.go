package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/termgrid/cell"
	"github.com/dshills/termgrid/style"
)

// ErrInvalidCut indicates divide offsets that are not strictly
// increasing or fall outside the line's width. This is a programming
// error in the caller, never a transient condition.
var ErrInvalidCut = errors.New("invalid cut")

// Line is an ordered sequence of segments representing one terminal
// row's content before final shaping.
type Line []Segment

// Width returns the total display width of the line in cells.
func (l Line) Width() int {
	total := 0
	for _, seg := range l {
		total += seg.Width()
	}
	return total
}

// SplitLines partitions segments at line-break boundaries.
// A trailing unterminated run is still a line; break segments
// themselves are consumed.
func SplitLines(segs []Segment) []Line {
	var lines []Line
	var current Line
	for _, seg := range segs {
		if seg.Kind == KindBreak {
			lines = append(lines, current)
			current = nil
			continue
		}
		current = append(current, seg)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// Flatten joins lines back into a flat segment sequence with break
// segments between rows. It is the inverse of SplitLines for
// break-terminated input.
func Flatten(lines []Line) []Segment {
	var segs []Segment
	for i, line := range lines {
		if i > 0 {
			segs = append(segs, NewBreak())
		}
		segs = append(segs, line...)
	}
	return segs
}

// AdjustWidth pads or crops the line to exactly width cells.
// Short lines gain one unstyled space run; long lines are cropped on
// a whole-glyph boundary, padding a single cell when the crop would
// otherwise bisect a wide glyph. The result's width equals width for
// any width >= 0.
func (l Line) AdjustWidth(width int) Line {
	if width <= 0 {
		return Line{}
	}

	total := l.Width()
	switch {
	case total == width:
		return append(Line{}, l...)
	case total < width:
		out := append(Line{}, l...)
		return append(out, NewText(strings.Repeat(" ", width-total)))
	}

	// Crop.
	out := Line{}
	acc := 0
	for _, seg := range l {
		if seg.Kind != KindText {
			out = append(out, seg)
			continue
		}
		sw := seg.Width()
		if acc+sw < width {
			out = append(out, seg)
			acc += sw
			continue
		}
		if acc+sw == width {
			out = append(out, seg)
			acc = width
			break
		}

		// This segment crosses the boundary.
		remaining := width - acc
		prefix, consumed := cell.Truncate(remaining, seg.Text)
		if consumed < remaining {
			// A wide glyph would be bisected; stop one cell early
			// and fill the gap with spaces.
			prefix += strings.Repeat(" ", remaining-consumed)
		}
		if prefix != "" {
			out = append(out, NewStyledText(prefix, seg.Style))
		}
		acc = width
		break
	}
	if acc < width {
		out = append(out, NewText(strings.Repeat(" ", width-acc)))
	}
	return out
}

// Divide splits the line at the given column offsets, producing one
// sub-line per interval [cuts[i], cuts[i+1]). Offsets must be strictly
// increasing and within [0, Width]; otherwise Divide fails with
// ErrInvalidCut. Wide glyphs straddling a cut are replaced by spaces
// on both sides so every sub-line keeps its exact interval width.
func (l Line) Divide(cuts []int) ([]Line, error) {
	total := l.Width()
	for i, c := range cuts {
		if c < 0 || c > total {
			return nil, fmt.Errorf("divide: %w: offset %d outside [0, %d]", ErrInvalidCut, c, total)
		}
		if i > 0 && c <= cuts[i-1] {
			return nil, fmt.Errorf("divide: %w: offsets must be strictly increasing (%d after %d)", ErrInvalidCut, c, cuts[i-1])
		}
	}
	if len(cuts) < 2 {
		return nil, nil
	}

	out := make([]Line, 0, len(cuts)-1)
	for i := 1; i < len(cuts); i++ {
		start, end := cuts[i-1], cuts[i]
		out = append(out, l.skipCells(start).AdjustWidth(end-start))
	}
	return out, nil
}

// skipCells drops the first n cells of the line on a whole-glyph
// boundary, padding with spaces when a wide glyph straddles the edge.
func (l Line) skipCells(n int) Line {
	if n <= 0 {
		return append(Line{}, l...)
	}
	out := Line{}
	skipped := 0
	for _, seg := range l {
		if skipped >= n {
			out = append(out, seg)
			continue
		}
		if seg.Kind != KindText {
			continue
		}
		sw := seg.Width()
		if skipped+sw <= n {
			skipped += sw
			continue
		}
		rest, pad := cell.Skip(n-skipped, seg.Text)
		if pad > 0 {
			out = append(out, NewStyledText(strings.Repeat(" ", pad), seg.Style))
		}
		if rest != "" {
			out = append(out, NewStyledText(rest, seg.Style))
		}
		skipped = n
	}
	return out
}

// Apply overlays st onto every text segment in the line. A segment's
// own explicit style wins; only unset fields inherit from st.
func (l Line) Apply(st style.Style) Line {
	out := make(Line, len(l))
	for i, seg := range l {
		if seg.Kind == KindText {
			seg.Style = st.Merge(seg.Style)
		}
		out[i] = seg
	}
	return out
}

// Simplify merges runs of adjacent text segments with identical style
// into one, preserving rendered content and order.
func (l Line) Simplify() Line {
	out := Line{}
	for _, seg := range l {
		if seg.Kind == KindText && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Kind == KindText && last.Style.Equals(seg.Style) {
				last.Text += seg.Text
				continue
			}
		}
		out = append(out, seg)
	}
	return out
}

// Shape splits segments into lines and adjusts each to exactly width
// cells.
func Shape(width int, segs []Segment) []Line {
	lines := SplitLines(segs)
	out := make([]Line, len(lines))
	for i, line := range lines {
		out[i] = line.AdjustWidth(width)
	}
	return out
}

// SetShape shapes segments into an exact width x height grid: lines
// are padded with space-filled rows or truncated to exactly height.
// Re-applying at the same dimensions is a no-op.
func SetShape(width, height int, segs []Segment) []Line {
	if height < 0 {
		height = 0
	}
	lines := Shape(width, segs)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, blankLine(width))
	}
	return lines
}

// VAlign selects vertical alignment for AlignVertical.
type VAlign int

const (
	// AlignTop places content at the top, padding below.
	AlignTop VAlign = iota
	// AlignMiddle centers content; an odd gap leaves the extra
	// line at the bottom.
	AlignMiddle
	// AlignBottom places content at the bottom, padding above.
	AlignBottom
)

// AlignVertical distributes blank padding lines around content to fill
// exactly height rows of the given width. Content taller than height
// is truncated.
func AlignVertical(align VAlign, width, height int, lines []Line) []Line {
	if height < 0 {
		height = 0
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	gap := height - len(lines)
	var top int
	switch align {
	case AlignBottom:
		top = gap
	case AlignMiddle:
		top = gap / 2
	default:
		top = 0
	}
	bottom := gap - top

	out := make([]Line, 0, height)
	for i := 0; i < top; i++ {
		out = append(out, blankLine(width))
	}
	for _, line := range lines {
		out = append(out, line.AdjustWidth(width))
	}
	for i := 0; i < bottom; i++ {
		out = append(out, blankLine(width))
	}
	return out
}

func blankLine(width int) Line {
	if width <= 0 {
		return Line{}
	}
	return Line{NewText(strings.Repeat(" ", width))}
}
