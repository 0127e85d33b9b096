// Package term resolves abstract color specifications into values a
// specific terminal can display.
//
// A terminal's color capability is captured once, at the boundary, as
// a ColorDepth (wrapped in a Profile snapshot) and threaded explicitly
// into rendering. Resolution is total: any color resolves to something
// displayable at any depth, degrading through nearest-match palette
// projection rather than failing.
package term

// ColorDepth is an ordered terminal color capability level.
type ColorDepth int

const (
	// NoColor means no color output at all.
	NoColor ColorDepth = iota
	// Basic is the 8-color ANSI palette.
	Basic
	// Standard is the 16-color ANSI palette.
	Standard
	// EightBit is the 256-color palette.
	EightBit
	// TrueColor is full 24-bit RGB.
	TrueColor
)

// String returns a human-readable name for the depth.
func (d ColorDepth) String() string {
	switch d {
	case NoColor:
		return "no-color"
	case Basic:
		return "8-color"
	case Standard:
		return "16-color"
	case EightBit:
		return "256-color"
	case TrueColor:
		return "true-color"
	default:
		return "unknown"
	}
}
