// Package measure implements the min/max space-negotiation protocol.
//
// A Measurement is an element's answer to "how much width could you
// use": the minimum it needs to stay legible and the maximum it could
// fill. Measurements are ephemeral values recomputed on every layout
// pass; nothing in this package caches or depends on prior state.
package measure

// Measurement is a (minimum, maximum) width pair in cells.
// Valid measurements satisfy 0 <= Minimum <= Maximum; use Normalize
// to repair values from untrusted math.
type Measurement struct {
	Minimum int
	Maximum int
}

// Zero is the empty measurement.
var Zero = Measurement{}

// Fill returns the measurement of an element with no opinion:
// it needs nothing and can fill all available width.
func Fill(available int) Measurement {
	if available < 0 {
		available = 0
	}
	return Measurement{Minimum: 0, Maximum: available}
}

// Span returns the span between maximum and minimum.
func (m Measurement) Span() int {
	return m.Maximum - m.Minimum
}

// Normalize returns a measurement with negative values clamped to zero
// and minimum <= maximum.
func (m Measurement) Normalize() Measurement {
	minimum, maximum := m.Minimum, m.Maximum
	if minimum < 0 {
		minimum = 0
	}
	if maximum < 0 {
		maximum = 0
	}
	if minimum > maximum {
		minimum = maximum
	}
	return Measurement{Minimum: minimum, Maximum: maximum}
}

// ClampMax returns a normalized measurement with both values capped
// at width.
func (m Measurement) ClampMax(width int) Measurement {
	minimum, maximum := m.Minimum, m.Maximum
	if minimum > width {
		minimum = width
	}
	if maximum > width {
		maximum = width
	}
	return Measurement{Minimum: minimum, Maximum: maximum}.Normalize()
}

// ClampMin returns a normalized measurement with both values raised
// to at least width.
func (m Measurement) ClampMin(width int) Measurement {
	minimum, maximum := m.Minimum, m.Maximum
	if minimum < width {
		minimum = width
	}
	if maximum < width {
		maximum = width
	}
	return Measurement{Minimum: minimum, Maximum: maximum}.Normalize()
}

// Clamp returns a normalized measurement constrained to [lo, hi].
func (m Measurement) Clamp(lo, hi int) Measurement {
	return m.ClampMin(lo).ClampMax(hi)
}

// Combine merges sibling measurements: the result needs as much as the
// most demanding element and can use as much as the widest one.
// Combine(nil) is Zero.
func Combine(ms []Measurement) Measurement {
	var out Measurement
	for _, m := range ms {
		m = m.Normalize()
		if m.Minimum > out.Minimum {
			out.Minimum = m.Minimum
		}
		if m.Maximum > out.Maximum {
			out.Maximum = m.Maximum
		}
	}
	return out
}

// Sum stacks measurements side by side: minimums and maximums add.
// Sum(nil) is Zero.
func Sum(ms []Measurement) Measurement {
	var out Measurement
	for _, m := range ms {
		m = m.Normalize()
		out.Minimum += m.Minimum
		out.Maximum += m.Maximum
	}
	return out
}

// Measurable is the optional capability of elements that can negotiate
// for width. Elements that do not implement it are treated as Fill.
type Measurable interface {
	// Measure reports the width range the element can use given the
	// currently available width.
	Measure(available int) Measurement
}

// Of measures v if it supports measurement, and falls back to
// Fill(available) if it does not.
func Of(v any, available int) Measurement {
	if m, ok := v.(Measurable); ok {
		return m.Measure(available).Normalize()
	}
	return Fill(available)
}
