package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termgrid/style"
	"github.com/dshills/termgrid/term"
)

// ConvertColor maps a resolved color to its tcell equivalent.
func ConvertColor(c term.ResolvedColor) tcell.Color {
	switch c.Kind {
	case term.ResolvedIndex:
		return tcell.PaletteColor(int(c.Index))
	case term.ResolvedRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// ConvertStyle resolves a style against the profile and maps it to a
// tcell.Style. Colors are downgraded to the profile's depth before
// conversion, so a tcell frontend never receives more color than the
// terminal snapshot supports.
func ConvertStyle(p term.Profile, s style.Style) tcell.Style {
	st := tcell.StyleDefault

	if fg := p.Resolve(s.Foreground); fg.Kind != term.ResolvedDefault {
		st = st.Foreground(ConvertColor(fg))
	}
	if bg := p.Resolve(s.Background); bg.Kind != term.ResolvedDefault {
		st = st.Background(ConvertColor(bg))
	}

	if s.Attributes.Has(style.AttrBold) {
		st = st.Bold(true)
	}
	if s.Attributes.Has(style.AttrDim) {
		st = st.Dim(true)
	}
	if s.Attributes.Has(style.AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attributes.Has(style.AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attributes.Has(style.AttrBlink) {
		st = st.Blink(true)
	}
	if s.Attributes.Has(style.AttrReverse) {
		st = st.Reverse(true)
	}
	if s.Attributes.Has(style.AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}

	return st
}
