package carousel

import (
	"testing"

	"github.com/ekozhina/bridgeway/internal/layout"
)

func newDesktop(t *testing.T, items int) *Carousel {
	t.Helper()
	c := New(1280, layout.DefaultBreakpoints)
	c.Rescan(items)
	return c
}

func TestArrowPagingDesktop(t *testing.T) {
	// 12 items on desktop are 12 slides, paged 3 at a time.
	c := newDesktop(t, 12)
	c.JumpTo(4)

	c.NextPage()
	if got := c.State().ActiveIndex; got != 7 {
		t.Errorf("next from 4: active = %d, want 7", got)
	}

	c.JumpTo(4)
	c.PrevPage()
	if got := c.State().ActiveIndex; got != 1 {
		t.Errorf("prev from 4: active = %d, want 1", got)
	}
}

func TestArrowClamping(t *testing.T) {
	c := newDesktop(t, 12)

	// Next never overshoots the last slide, even from a partial page.
	c.JumpTo(10)
	c.NextPage()
	if got := c.State().ActiveIndex; got != 11 {
		t.Errorf("next from 10: active = %d, want 11", got)
	}
	c.NextPage()
	if got := c.State().ActiveIndex; got != 11 {
		t.Errorf("next at end: active = %d, want 11", got)
	}

	// Prev never goes below zero.
	c.JumpTo(1)
	c.PrevPage()
	if got := c.State().ActiveIndex; got != 0 {
		t.Errorf("prev from 1: active = %d, want 0", got)
	}
	c.PrevPage()
	if got := c.State().ActiveIndex; got != 0 {
		t.Errorf("prev at start: active = %d, want 0", got)
	}
}

func TestArrowEnabledState(t *testing.T) {
	c := newDesktop(t, 12)

	st := c.State()
	if st.PrevEnabled {
		t.Error("prev should be disabled on slide 0")
	}
	if !st.NextEnabled {
		t.Error("next should be enabled on slide 0")
	}

	// Desktop shows 3 slides per page, so the track ends at slide 9.
	c.JumpTo(9)
	st = c.State()
	if !st.PrevEnabled {
		t.Error("prev should be enabled mid-track")
	}
	if st.NextEnabled {
		t.Error("next should be disabled at end of track")
	}
}

func TestPageSizePerViewport(t *testing.T) {
	cases := []struct {
		width int
		items int
		from  int
		want  int
	}{
		// desktop: 3 slides per page
		{1280, 12, 0, 3},
		// tablet: 12 items stack into 6 slides, paged 2 at a time
		{800, 12, 0, 2},
		// mobile: 12 items stack into 6 slides, paged 1 at a time
		{375, 12, 0, 1},
	}
	for _, tc := range cases {
		c := New(tc.width, layout.DefaultBreakpoints)
		c.Rescan(tc.items)
		c.JumpTo(tc.from)
		c.NextPage()
		if got := c.State().ActiveIndex; got != tc.want {
			t.Errorf("width=%d: next from %d = %d, want %d", tc.width, tc.from, got, tc.want)
		}
	}
}

func TestRescanResetsToFirstSlide(t *testing.T) {
	c := newDesktop(t, 12)
	c.JumpTo(5)
	c.Rescan(9)
	st := c.State()
	if st.ActiveIndex != 0 {
		t.Errorf("active after rescan = %d, want 0", st.ActiveIndex)
	}
	if st.TotalSlides != 9 {
		t.Errorf("total after rescan = %d, want 9", st.TotalSlides)
	}
}

func TestResizeKeepsPositionAcrossClassChange(t *testing.T) {
	c := newDesktop(t, 12)
	c.JumpTo(7)

	// Same class: no relayout, position untouched.
	if c.Resize(1600) {
		t.Error("resize within desktop should not report a change")
	}
	if got := c.State().ActiveIndex; got != 7 {
		t.Errorf("active after same-class resize = %d, want 7", got)
	}

	// Desktop -> mobile: 12 items become 6 slides, position clamps, no reset.
	if !c.Resize(375) {
		t.Error("resize to mobile should report a change")
	}
	st := c.State()
	if st.Viewport != layout.Mobile {
		t.Errorf("viewport = %q, want mobile", st.Viewport)
	}
	if st.TotalSlides != 6 {
		t.Errorf("total after resize = %d, want 6", st.TotalSlides)
	}
	if st.ActiveIndex != 5 {
		t.Errorf("active after resize = %d, want clamped 5", st.ActiveIndex)
	}
}

func TestStateWindowTracksActive(t *testing.T) {
	c := New(375, layout.DefaultBreakpoints)
	c.Rescan(20) // 10 slides on mobile

	c.JumpTo(9)
	st := c.State()
	if st.Window.Start != 6 || st.Window.Count != 4 {
		t.Errorf("window at end = %+v, want start 6 count 4", st.Window)
	}
	stride := layout.GeometryFor(layout.Mobile).ControlStride
	if st.WindowOffset != 6*stride {
		t.Errorf("offset = %d, want %d", st.WindowOffset, 6*stride)
	}
}

func TestNilCarouselNoOps(t *testing.T) {
	var c *Carousel
	c.Rescan(10)
	c.JumpTo(3)
	c.NextPage()
	c.PrevPage()
	if !c.AtStart() || !c.AtEnd() {
		t.Error("nil carousel should report both ends")
	}
	st := c.State()
	if st.TotalSlides != 0 || st.PrevEnabled || st.NextEnabled {
		t.Errorf("nil carousel state = %+v, want empty", st)
	}
}

func TestManagerAbsentSection(t *testing.T) {
	m := NewManager(layout.DefaultBreakpoints)
	m.Register("news", 1280)

	if m.Get("reviews") != nil {
		t.Error("unregistered section should return nil")
	}
	// Operating on the absent section must not panic.
	m.Get("reviews").Rescan(5)

	changed := m.ResizeAll(375)
	if len(changed) != 1 || changed[0] != "news" {
		t.Errorf("ResizeAll changed = %v, want [news]", changed)
	}
}
