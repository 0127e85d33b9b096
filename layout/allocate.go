package layout

import (
	"sort"

	"github.com/dshills/termgrid/measure"
)

// slotState carries one slot's allocation through the phases.
type slotState struct {
	visible  bool
	isFr     bool
	weight   int
	alloc    int
	floor    int // shrink never goes below this
	ceiling  int // surplus growth never goes above this (non-fr)
	flexible bool
}

// Allocate computes exact per-slot widths for the given available
// width. The result always has one entry per slot; hidden slots get 0.
//
// Phases: visibility, fixed/percent resolution, auto measurement,
// fractional distribution, then overflow resolution (shrink flexible
// slots toward their floors, or grow them toward their ceilings) using
// largest-remainder apportionment so totals never drift.
func Allocate(available int, slots []Slot) []int {
	if available < 0 {
		available = 0
	}
	states := make([]slotState, len(slots))

	// Phase 0: visibility.
	for i, slot := range slots {
		size := slot.Size
		switch slot.Visibility.Kind {
		case VisibilityHiddenBelow:
			if available < slot.Visibility.Threshold {
				continue
			}
		case VisibilityCollapseBelow:
			if available < slot.Visibility.Threshold {
				size = slot.Visibility.Alt
			}
		}
		st := &states[i]
		st.visible = true
		if size.Kind == SizeFr {
			st.isFr = true
			st.weight = size.Weight
			if st.weight < 0 {
				st.weight = 0
			}
			continue
		}
		// Phases 1-2: fixed, percent, auto, min/max.
		st.alloc, st.floor, st.ceiling, st.flexible = resolveSize(size, available, slot.Content)
	}

	// Phase 3: fractional distribution of what is left.
	consumed := 0
	var frIdx []int
	var frWeights []int
	for i := range states {
		st := &states[i]
		if !st.visible {
			continue
		}
		if st.isFr {
			frIdx = append(frIdx, i)
			frWeights = append(frWeights, st.weight)
			continue
		}
		consumed += st.alloc
	}
	if remaining := available - consumed; remaining > 0 && len(frIdx) > 0 {
		shares := apportion(remaining, frWeights)
		for k, i := range frIdx {
			states[i].alloc = shares[k]
		}
	}

	// Phase 4: overflow resolution.
	total := 0
	for i := range states {
		total += states[i].alloc
	}
	switch {
	case total > available:
		shrink(states, total-available)
	case total < available:
		grow(states, available-total, frIdx, frWeights)
	}

	out := make([]int, len(slots))
	for i := range states {
		out[i] = states[i].alloc
	}
	return out
}

// resolveSize computes a non-fractional size's initial allocation,
// its hard floor, and its growth ceiling.
func resolveSize(size Size, available int, content measure.Measurable) (alloc, floor, ceiling int, flexible bool) {
	switch size.Kind {
	case SizeFixed:
		a := clampInt(size.Cells, 0, available)
		return a, a, a, false

	case SizePercent:
		p := clampInt(size.Percent, 0, 100)
		a := available * p / 100
		return a, a, a, false

	case SizeAuto:
		var m measure.Measurement
		if content != nil {
			m = content.Measure(available).Normalize()
		} else {
			m = measure.Fill(available)
		}
		m = m.ClampMax(available)
		return m.Maximum, m.Minimum, m.Maximum, true

	case SizeMinMax:
		lo, hi := size.Min, size.Max
		if lo < 0 {
			lo = 0
		}
		if hi < lo {
			hi = lo
		}
		var ia, ifloor, iceil int
		var iflex bool
		if size.Inner != nil {
			ia, ifloor, iceil, iflex = resolveSize(*size.Inner, available, content)
		} else {
			ia, ifloor, iceil, iflex = resolveSize(Auto(), available, content)
		}
		return clampInt(ia, lo, hi), clampInt(ifloor, lo, hi), clampInt(iceil, lo, hi), iflex

	default:
		return 0, 0, 0, false
	}
}

// shrink removes overrun cells from flexible slots: auto slots toward
// their floors first (proportional to slack), then fractional slots
// toward zero (proportional to weight). Hard floors are never crossed;
// an overrun that survives both rounds is accepted and clips
// downstream.
func shrink(states []slotState, overrun int) {
	var autoIdx, autoSlack []int
	var frIdx, frWeights, frCaps []int
	for i := range states {
		st := &states[i]
		if !st.visible {
			continue
		}
		if st.isFr {
			if st.alloc > 0 && st.weight > 0 {
				frIdx = append(frIdx, i)
				frWeights = append(frWeights, st.weight)
				frCaps = append(frCaps, st.alloc)
			}
			continue
		}
		if st.flexible && st.alloc > st.floor {
			autoIdx = append(autoIdx, i)
			autoSlack = append(autoSlack, st.alloc-st.floor)
		}
	}

	cuts := distribute(overrun, autoSlack, autoSlack)
	for k, i := range autoIdx {
		states[i].alloc -= cuts[k]
		overrun -= cuts[k]
	}
	if overrun <= 0 {
		return
	}

	cuts = distribute(overrun, frWeights, frCaps)
	for k, i := range frIdx {
		states[i].alloc -= cuts[k]
	}
}

// grow hands surplus cells to flexible slots: auto slots up to their
// measured maximum first, then fractional slots without bound.
func grow(states []slotState, surplus int, frIdx, frWeights []int) {
	var autoIdx, autoSlack []int
	for i := range states {
		st := &states[i]
		if st.visible && !st.isFr && st.flexible && st.ceiling > st.alloc {
			autoIdx = append(autoIdx, i)
			autoSlack = append(autoSlack, st.ceiling-st.alloc)
		}
	}

	adds := distribute(surplus, autoSlack, autoSlack)
	for k, i := range autoIdx {
		states[i].alloc += adds[k]
		surplus -= adds[k]
	}
	if surplus <= 0 || len(frIdx) == 0 {
		return
	}

	shares := apportion(surplus, frWeights)
	for k, i := range frIdx {
		states[i].alloc += shares[k]
	}
}

// apportion splits total into integer shares proportional to weights
// using the largest-remainder method: floor shares first, then one
// leftover cell each to the largest remainders, ties broken by slot
// order. Shares always sum to total (zero weights get nothing; an
// all-zero weight list returns zeros).
func apportion(total int, weights []int) []int {
	out := make([]int, len(weights))
	if total <= 0 {
		return out
	}
	weightSum := 0
	for _, w := range weights {
		if w > 0 {
			weightSum += w
		}
	}
	if weightSum == 0 {
		return out
	}

	type rem struct {
		idx  int
		frac int
	}
	remainders := make([]rem, 0, len(weights))
	assigned := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		exact := total * w
		out[i] = exact / weightSum
		assigned += out[i]
		remainders = append(remainders, rem{idx: i, frac: exact % weightSum})
	}

	leftover := total - assigned
	sort.SliceStable(remainders, func(a, b int) bool {
		return remainders[a].frac > remainders[b].frac
	})
	for k := 0; k < leftover && k < len(remainders); k++ {
		out[remainders[k].idx]++
	}
	return out
}

// distribute splits amount proportionally by weights, with a per-slot
// cap. Amounts that cannot be placed because every cap is exhausted
// are left undistributed.
func distribute(amount int, weights, caps []int) []int {
	out := make([]int, len(weights))
	for amount > 0 {
		var idxs, ws []int
		capTotal := 0
		for i := range weights {
			room := caps[i] - out[i]
			if room > 0 && weights[i] > 0 {
				idxs = append(idxs, i)
				ws = append(ws, weights[i])
				capTotal += room
			}
		}
		if len(idxs) == 0 {
			break
		}

		target := amount
		if capTotal < target {
			target = capTotal
		}
		shares := apportion(target, ws)
		given := 0
		for k, i := range idxs {
			g := shares[k]
			if room := caps[i] - out[i]; g > room {
				g = room
			}
			out[i] += g
			given += g
		}
		if given == 0 {
			break
		}
		amount -= given
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
