// Package layout turns negotiated measurements into exact per-slot
// cell allocations under a fixed available width.
//
// Allocation is a pure function re-run on every layout pass; there is
// no persistent state. Misconfiguration surfaces immediately as a
// structural error, degraded content never does.
package layout

import "github.com/dshills/termgrid/measure"

// SizeKind identifies a slot sizing policy.
type SizeKind uint8

const (
	// SizeFixed is an exact cell count.
	SizeFixed SizeKind = iota
	// SizeFr is a weighted share of leftover space.
	SizeFr
	// SizeAuto sizes to the slot's measured content.
	SizeAuto
	// SizeMinMax clamps an inner size into [Min, Max].
	SizeMinMax
	// SizePercent is a percentage of the available width.
	SizePercent
)

// Size is a slot sizing specification.
type Size struct {
	Kind    SizeKind
	Cells   int   // SizeFixed
	Weight  int   // SizeFr
	Min     int   // SizeMinMax
	Max     int   // SizeMinMax
	Inner   *Size // SizeMinMax
	Percent int   // SizePercent
}

// Fixed returns a size of exactly n cells.
func Fixed(n int) Size {
	return Size{Kind: SizeFixed, Cells: n}
}

// Fr returns a fractional size with the given weight.
func Fr(weight int) Size {
	return Size{Kind: SizeFr, Weight: weight}
}

// Auto returns a content-measured size.
func Auto() Size {
	return Size{Kind: SizeAuto}
}

// MinMax resolves inner and clamps the result into [min, max].
func MinMax(min, max int, inner Size) Size {
	return Size{Kind: SizeMinMax, Min: min, Max: max, Inner: &inner}
}

// Percent returns a size of pct percent of the available width,
// rounded down.
func Percent(pct int) Size {
	return Size{Kind: SizePercent, Percent: pct}
}

// Overflow selects how a slot's content behaves when it does not fit
// its allocation. The allocator records the policy; the composition
// operators downstream enforce it.
type Overflow uint8

const (
	// OverflowClip cuts content at the allocation boundary.
	OverflowClip Overflow = iota
	// OverflowWrap wraps content onto additional rows.
	OverflowWrap
	// OverflowEllipsis clips with a trailing ellipsis.
	OverflowEllipsis
	// OverflowHidden hides overflowing content entirely.
	OverflowHidden
)

// VisibilityKind identifies a slot visibility policy.
type VisibilityKind uint8

const (
	// VisibilityVisible always shows the slot.
	VisibilityVisible VisibilityKind = iota
	// VisibilityHiddenBelow drops the slot when the available width
	// falls below a threshold.
	VisibilityHiddenBelow
	// VisibilityCollapseBelow substitutes an alternate size when the
	// available width falls below a threshold.
	VisibilityCollapseBelow
)

// Visibility is a slot visibility specification.
type Visibility struct {
	Kind      VisibilityKind
	Threshold int
	Alt       Size // VisibilityCollapseBelow
}

// Always returns the always-visible policy.
func Always() Visibility {
	return Visibility{Kind: VisibilityVisible}
}

// HideBelow drops the slot entirely below the given available width.
func HideBelow(threshold int) Visibility {
	return Visibility{Kind: VisibilityHiddenBelow, Threshold: threshold}
}

// CollapseTo swaps in an alternate size below the given available width.
func CollapseTo(threshold int, alt Size) Visibility {
	return Visibility{Kind: VisibilityCollapseBelow, Threshold: threshold, Alt: alt}
}

// Slot is one position in a layout: a sizing policy, an overflow
// policy, a visibility policy, and (for auto sizing) the content to
// measure. Slots are constructed fresh per layout call and never
// mutated in place.
type Slot struct {
	Size       Size
	Overflow   Overflow
	Visibility Visibility

	// Content is the slot's measurable content, consulted only for
	// auto sizing. A nil content fills: {0, available}.
	Content measure.Measurable
}
