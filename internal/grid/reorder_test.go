package grid

import (
	"reflect"
	"sort"
	"testing"

	"github.com/ekozhina/bridgeway/internal/layout"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestReorderTablet(t *testing.T) {
	got := Reorder(intRange(8), layout.Tablet)
	want := []int{1, 2, 5, 6, 3, 4, 7, 8}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reorder(1..8, tablet) = %v, want %v", got, want)
	}
}

func TestReorderMobile(t *testing.T) {
	got := Reorder(intRange(6), layout.Mobile)
	want := []int{1, 3, 5, 2, 4, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reorder(1..6, mobile) = %v, want %v", got, want)
	}
}

func TestReorderDesktopIsIdentity(t *testing.T) {
	in := intRange(7)
	got := Reorder(in, layout.Desktop)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Reorder(desktop) = %v, want identity %v", got, in)
	}
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	in := intRange(6)
	_ = Reorder(in, layout.Mobile)
	if !reflect.DeepEqual(in, intRange(6)) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestReorderEmptyAndSingle(t *testing.T) {
	for _, v := range []layout.Viewport{layout.Mobile, layout.Tablet, layout.Desktop} {
		if got := Reorder([]int{}, v); len(got) != 0 {
			t.Errorf("%s: Reorder(empty) = %v, want empty", v, got)
		}
		if got := Reorder([]int{42}, v); !reflect.DeepEqual(got, []int{42}) {
			t.Errorf("%s: Reorder([42]) = %v, want [42]", v, got)
		}
	}
}

func TestReorderPartialGroups(t *testing.T) {
	// Mobile with an odd count: evens then odds.
	got := Reorder(intRange(5), layout.Mobile)
	want := []int{1, 3, 5, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reorder(1..5, mobile) = %v, want %v", got, want)
	}

	// Tablet with a partial trailing group: positions 0,1 of the group still
	// feed the top stream.
	got = Reorder(intRange(6), layout.Tablet)
	want = []int{1, 2, 5, 6, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reorder(1..6, tablet) = %v, want %v", got, want)
	}
}

// TestReorderIsPermutation checks that for every viewport and a range of
// lengths the output is the same multiset as the input.
func TestReorderIsPermutation(t *testing.T) {
	for _, v := range []layout.Viewport{layout.Mobile, layout.Tablet, layout.Desktop} {
		for n := 0; n <= 17; n++ {
			in := intRange(n)
			out := Reorder(in, v)
			if len(out) != n {
				t.Fatalf("%s n=%d: len = %d", v, n, len(out))
			}
			sorted := make([]int, n)
			copy(sorted, out)
			sort.Ints(sorted)
			if !reflect.DeepEqual(sorted, in) {
				t.Errorf("%s n=%d: not a permutation: %v", v, n, out)
			}
		}
	}
}

func TestReadingOrderInvertsReorder(t *testing.T) {
	for _, v := range []layout.Viewport{layout.Mobile, layout.Tablet, layout.Desktop} {
		for n := 0; n <= 16; n++ {
			in := intRange(n)
			if got := ReadingOrder(Reorder(in, v), v); !reflect.DeepEqual(got, in) {
				t.Errorf("%s n=%d: round-trip = %v, want %v", v, n, got, in)
			}
		}
	}
}

// simulateGridFill reproduces the slide engine's fill: the first half of the
// input becomes the top row across all columns, the rest the bottom row.
// Returned in reading order, page by page, row-major.
func simulateGridFill(in []int, g layout.Geometry) []int {
	if g.Rows == 1 {
		out := make([]int, len(in))
		copy(out, in)
		return out
	}
	columns := (len(in) + g.Rows - 1) / g.Rows
	topLen := columns
	var out []int
	for page := 0; page*g.Columns < columns; page++ {
		for row := 0; row < g.Rows; row++ {
			for col := page * g.Columns; col < (page+1)*g.Columns && col < columns; col++ {
				idx := col + row*topLen
				if idx < len(in) {
					out = append(out, in[idx])
				}
			}
		}
	}
	return out
}

// TestReorderRoundTripsThroughGridFill feeds the reordered list through a
// simulation of the engine's column-first fill and checks that reading the
// grid page by page restores canonical order.
func TestReorderRoundTripsThroughGridFill(t *testing.T) {
	cases := []struct {
		viewport layout.Viewport
		n        int
	}{
		{layout.Mobile, 6},
		{layout.Mobile, 5},
		{layout.Mobile, 8},
		{layout.Tablet, 8},
		{layout.Tablet, 12},
		{layout.Desktop, 7},
	}
	for _, tc := range cases {
		in := intRange(tc.n)
		g := layout.GeometryFor(tc.viewport)
		got := simulateGridFill(Reorder(in, tc.viewport), g)
		if !reflect.DeepEqual(got, in) {
			t.Errorf("%s n=%d: grid fill reads %v, want %v", tc.viewport, tc.n, got, in)
		}
	}
}
