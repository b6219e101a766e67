// Package carousel tracks the slide-space state of one content carousel and
// exposes the two navigation granularities the news section uses: absolute
// jumps through numbered pagination controls and page-sized moves through
// the prev/next arrows.
package carousel

import (
	"github.com/ekozhina/bridgeway/internal/layout"
	"github.com/ekozhina/bridgeway/internal/pagination"
)

// Carousel is the slide-space state of one section. Indexes are slide
// indexes, not item indexes: with row stacking active one slide bundles
// several visual cards.
//
// All mutating entry points funnel into the same recompute path so that user
// navigation, viewport changes and content reloads can never leave the state
// snapshot out of sync with each other.
type Carousel struct {
	breakpoints layout.Breakpoints
	viewport    layout.Viewport
	totalItems  int
	totalSlides int
	activeIndex int
}

// State is a read-only snapshot of everything the UI needs to redraw the
// navigation controls.
type State struct {
	Viewport    layout.Viewport   `json:"viewport"`
	ActiveIndex int               `json:"active_index"`
	TotalSlides int               `json:"total_slides"`
	PrevEnabled bool              `json:"prev_enabled"`
	NextEnabled bool              `json:"next_enabled"`
	// SlidesPerPage is the arrow step for the current viewport.
	SlidesPerPage int               `json:"slides_per_page"`
	Window        pagination.Window `json:"window"`
	// WindowOffset is the pagination container offset in px.
	WindowOffset int `json:"window_offset"`
}

// New creates a carousel for the given initial width.
func New(width int, bp layout.Breakpoints) *Carousel {
	return &Carousel{
		breakpoints: bp,
		viewport:    layout.ClassForWidth(width, bp),
	}
}

// Viewport returns the current viewport class.
func (c *Carousel) Viewport() layout.Viewport {
	if c == nil {
		return layout.Desktop
	}
	return c.viewport
}

// Rescan tells the carousel its slide list was rebuilt for a new item set.
// The active index resets to zero: a content reload always starts the
// section from its first page.
func (c *Carousel) Rescan(totalItems int) {
	if c == nil {
		return
	}
	c.totalItems = totalItems
	c.totalSlides = layout.GeometryFor(c.viewport).SlideCount(totalItems)
	c.activeIndex = 0
}

// Resize recomputes the viewport class for the new width. Widths that stay
// inside the current class are ignored, so a drag-resize settles into at
// most one relayout. A class change re-derives the slide space but keeps the
// visitor's position, clamped to the new range.
func (c *Carousel) Resize(width int) bool {
	if c == nil {
		return false
	}
	v := layout.ClassForWidth(width, c.breakpoints)
	if v == c.viewport {
		return false
	}
	c.viewport = v
	c.totalSlides = layout.GeometryFor(v).SlideCount(c.totalItems)
	c.activeIndex = clamp(c.activeIndex, 0, c.lastIndex())
	return true
}

// JumpTo moves to an absolute slide index (fine-grained control: pagination
// control k targets slide k-1). Out-of-range targets clamp.
func (c *Carousel) JumpTo(index int) {
	if c == nil {
		return
	}
	c.activeIndex = clamp(index, 0, c.lastIndex())
}

// NextPage advances by one full page of slides. The move may land on a
// partial final page; it never overshoots the last slide.
func (c *Carousel) NextPage() {
	if c == nil {
		return
	}
	c.activeIndex = clamp(c.activeIndex+c.pageSize(), 0, c.lastIndex())
}

// PrevPage moves back by one full page of slides, stopping at slide zero.
func (c *Carousel) PrevPage() {
	if c == nil {
		return
	}
	c.activeIndex = clamp(c.activeIndex-c.pageSize(), 0, c.lastIndex())
}

// AtStart reports whether the carousel sits on its first slide.
func (c *Carousel) AtStart() bool { return c == nil || c.activeIndex == 0 }

// AtEnd reports whether the carousel reached its end of track: the slide
// engine considers the track ended once the last full page is in view, which
// happens before the active index reaches the last slide when several slides
// are visible at once.
func (c *Carousel) AtEnd() bool {
	if c == nil {
		return true
	}
	end := c.totalSlides - layout.GeometryFor(c.viewport).SlidesPerPage()
	if end < 0 {
		end = 0
	}
	return c.activeIndex >= end
}

// State returns the snapshot the UI renders from. Calling it is always
// preceded by one of the mutating entry points, so the snapshot reflects the
// full rescan-then-recompute sequence regardless of which trigger fired.
func (c *Carousel) State() State {
	if c == nil {
		return State{Viewport: layout.Desktop}
	}
	g := layout.GeometryFor(c.viewport)
	w := pagination.Compute(c.totalSlides, c.activeIndex)
	return State{
		Viewport:      c.viewport,
		ActiveIndex:   c.activeIndex,
		TotalSlides:   c.totalSlides,
		PrevEnabled:   !c.AtStart(),
		NextEnabled:   !c.AtEnd(),
		SlidesPerPage: g.SlidesPerPage(),
		Window:        w,
		WindowOffset:  pagination.Offset(w.Start, g.ControlStride),
	}
}

// pageSize is the arrow step, derived from the card/slide ratio.
func (c *Carousel) pageSize() int {
	return layout.GeometryFor(c.viewport).SlidesPerPage()
}

func (c *Carousel) lastIndex() int {
	if c.totalSlides == 0 {
		return 0
	}
	return c.totalSlides - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
