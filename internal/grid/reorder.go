// Package grid compensates for the slide engine's grid-fill behaviour.
//
// With row stacking active the engine fills the entire top row across all
// pages before it starts the bottom row. Items handed over in reading order
// would therefore end up scattered: page one would show item 1 over item N/2
// instead of item 1 over item 2. Reorder permutes the canonical list so that
// after the engine's column-first fill the visitor sees plain reading order.
package grid

import "github.com/ekozhina/bridgeway/internal/layout"

// Reorder permutes items from canonical reading order into the traversal
// order the grid-fill algorithm expects for the given viewport class.
//
// The input must always be the canonical list: reordering an already
// reordered list for a different viewport produces garbage.
func Reorder[T any](items []T, v layout.Viewport) []T {
	switch v {
	case layout.Mobile:
		return splitAlternating(items)
	case layout.Tablet:
		return splitByGroups(items, 4)
	default:
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
}

// splitAlternating handles the 1-column, 2-row case: even-indexed items feed
// the top row, odd-indexed items the bottom row.
func splitAlternating[T any](items []T) []T {
	top := make([]T, 0, (len(items)+1)/2)
	bottom := make([]T, 0, len(items)/2)
	for i, it := range items {
		if i%2 == 0 {
			top = append(top, it)
		} else {
			bottom = append(bottom, it)
		}
	}
	return append(top, bottom...)
}

// splitByGroups handles the 2-column, 2-row case: within each consecutive run
// of groupSize items, the first half feeds the top row and the second half
// the bottom row. A partial trailing run follows the same position rule.
func splitByGroups[T any](items []T, groupSize int) []T {
	half := groupSize / 2
	top := make([]T, 0, (len(items)+1)/2)
	bottom := make([]T, 0, len(items)/2)
	for i, it := range items {
		if i%groupSize < half {
			top = append(top, it)
		} else {
			bottom = append(bottom, it)
		}
	}
	return append(top, bottom...)
}

// ReadingOrder is the inverse of Reorder: given a list in grid traversal
// order it restores canonical reading order. Used to verify that a reordered
// list renders back to the sequence the content author wrote.
func ReadingOrder[T any](items []T, v layout.Viewport) []T {
	perm := permutation(len(items), v)
	out := make([]T, len(items))
	for canonical, traversal := range perm {
		out[canonical] = items[traversal]
	}
	return out
}

// permutation returns, for each canonical index, the index it occupies in
// the reordered list.
func permutation(n int, v layout.Viewport) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	reordered := Reorder(idx, v)
	perm := make([]int, n)
	for pos, canonical := range reordered {
		perm[canonical] = pos
	}
	return perm
}
