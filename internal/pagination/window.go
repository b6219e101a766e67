// Package pagination computes the sliding window of numbered jump-to-slide
// controls. All controls stay in the DOM; only the container offset changes,
// so focus state survives window shifts and the control strip cannot grow
// without bound as content grows.
package pagination

// MaxVisible is the most controls shown at once.
const MaxVisible = 4

// Window describes which contiguous run of pagination controls is visible.
type Window struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

// Compute returns the visible window for the given slide space. When the
// whole strip fits (totalSlides <= MaxVisible) every control is shown.
// Otherwise the window pins to the start for the first three slides, pins to
// the end for the last two, and tracks activeIndex-2 in between. The middle
// offset places the active control third of four; that asymmetry matches the
// shipped behaviour and is kept deliberately.
func Compute(totalSlides, activeIndex int) Window {
	if totalSlides <= 0 {
		return Window{}
	}
	if totalSlides <= MaxVisible {
		return Window{Start: 0, Count: totalSlides}
	}

	var start int
	switch {
	case activeIndex <= 2:
		start = 0
	case activeIndex >= totalSlides-2:
		start = totalSlides - MaxVisible
	default:
		start = activeIndex - 2
	}

	// Clamp in all branches; the middle branch can drift past the end when
	// activeIndex sits close to totalSlides.
	if start < 0 {
		start = 0
	}
	if start > totalSlides-MaxVisible {
		start = totalSlides - MaxVisible
	}

	return Window{Start: start, Count: MaxVisible}
}

// Offset converts a window start into the container scroll offset in px,
// given the per-viewport control stride (control width plus gap).
func Offset(start, stride int) int {
	return start * stride
}

// Contains reports whether the control for the given slide index is inside
// the window.
func (w Window) Contains(index int) bool {
	return index >= w.Start && index < w.Start+w.Count
}
