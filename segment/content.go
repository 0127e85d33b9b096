package segment

import (
	"strings"

	"github.com/dshills/termgrid/cell"
	"github.com/dshills/termgrid/measure"
)

// Content is a segment sequence that can negotiate for layout width.
// Its minimum is the widest unbreakable word and its maximum is the
// widest line, both capped at the available width.
type Content []Segment

// Measure implements measure.Measurable.
func (c Content) Measure(available int) measure.Measurement {
	var widest, word int
	for _, line := range SplitLines(c) {
		if w := line.Width(); w > widest {
			widest = w
		}
		if w := widestWord(line); w > word {
			word = w
		}
	}
	return measure.Measurement{Minimum: word, Maximum: widest}.ClampMax(available)
}

// widestWord returns the width of the longest space-delimited word in
// the line, treating adjacent text segments as contiguous.
func widestWord(l Line) int {
	var sb strings.Builder
	for _, seg := range l {
		if seg.Kind == KindText {
			sb.WriteString(seg.Text)
		}
	}
	widest := 0
	for _, word := range strings.Fields(sb.String()) {
		if w := cell.Measure(word); w > widest {
			widest = w
		}
	}
	return widest
}
