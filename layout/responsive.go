package layout

import "fmt"

// Breakpoint pairs an available-width threshold with the slot list to
// use at or above it.
type Breakpoint struct {
	Threshold int
	Slots     []Slot
}

// Responsive selects the slot list of the largest threshold that is
// <= available. Thresholds must be strictly increasing. Callers are
// expected to supply a zero-threshold catch-all entry; if no entry
// matches, Responsive fails with ErrNoMatchingBreakpoint.
func Responsive(breakpoints []Breakpoint, available int) ([]Slot, error) {
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i].Threshold <= breakpoints[i-1].Threshold {
			return nil, &ConfigError{
				Op:  "responsive",
				Err: ErrInvalidBreakpoints,
				Detail: fmt.Sprintf("threshold %d at entry %d not above %d",
					breakpoints[i].Threshold, i, breakpoints[i-1].Threshold),
			}
		}
	}

	best := -1
	for i, bp := range breakpoints {
		if bp.Threshold <= available {
			best = i
		}
	}
	if best < 0 {
		return nil, &ConfigError{
			Op:     "responsive",
			Err:    ErrNoMatchingBreakpoint,
			Detail: fmt.Sprintf("available width %d below every threshold", available),
		}
	}
	return breakpoints[best].Slots, nil
}
