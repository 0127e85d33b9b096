// Package segment provides the atomic content model for terminal
// rendering and the composition algebra that shapes it: splitting,
// padding, cropping, dividing, styling, and rectangular shaping.
//
// A Segment is an immutable value: a styled run of text, a line break,
// or a control marker. A Line is one terminal row's worth of segments.
// Every operator returns fresh values; nothing is mutated in place.
package segment

import (
	"github.com/dshills/termgrid/cell"
	"github.com/dshills/termgrid/style"
)

// Kind identifies the segment variant.
type Kind uint8

const (
	// KindText is a run of styled text.
	KindText Kind = iota
	// KindBreak is a line break.
	KindBreak
	// KindControl is a non-printing control marker.
	KindControl
)

// Segment is the atomic unit of renderable content.
type Segment struct {
	// Kind is the segment variant.
	Kind Kind

	// Text is the run content. Only meaningful for KindText.
	Text string

	// Style is the run's style. The zero (default) style inherits
	// everything from styles applied later.
	Style style.Style

	// Code is the control code. Only meaningful for KindControl.
	Code int
}

// NewText creates an unstyled text segment.
func NewText(text string) Segment {
	return Segment{Kind: KindText, Text: text}
}

// NewStyledText creates a text segment with the given style.
func NewStyledText(text string, st style.Style) Segment {
	return Segment{Kind: KindText, Text: text, Style: st}
}

// NewBreak creates a line break segment.
func NewBreak() Segment {
	return Segment{Kind: KindBreak}
}

// NewControl creates a control marker segment.
func NewControl(code int) Segment {
	return Segment{Kind: KindControl, Code: code}
}

// Width returns the display width of the segment in cells.
// Breaks and control markers occupy no cells.
func (s Segment) Width() int {
	if s.Kind != KindText {
		return 0
	}
	return cell.Measure(s.Text)
}

// IsText returns true for text segments.
func (s Segment) IsText() bool {
	return s.Kind == KindText
}

// WithStyle returns a copy of the segment with the given style.
func (s Segment) WithStyle(st style.Style) Segment {
	s.Style = st
	return s
}
