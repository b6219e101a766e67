// Package cards decides the visual treatment of each news card: its size
// class and which responsive image variant it should load. The output is a
// plain description of desired state; templates turn it into markup.
package cards

import (
	"github.com/ekozhina/bridgeway/internal/content"
	"github.com/ekozhina/bridgeway/internal/layout"
)

// Card is one rendered news card: the content item plus its computed
// presentation attributes.
type Card struct {
	Item content.Item `json:"item"`
	// Position is the card's index in the reordered list.
	Position int `json:"position"`
	// Large marks the wide/tall card variant.
	Large bool `json:"large"`
	// Image is the full image path for the active viewport, derived from the
	// item's base path.
	Image string `json:"image"`
}

// IsLarge reports whether the card at index (in the reordered list, not the
// canonical one) gets the large variant.
//
// The mobile rule depends directly on the reorder split: after reordering,
// the whole first half of the list is the top row, which is rendered large.
// If the reorder granularity ever changes this threshold must change with it.
func IsLarge(index, total int, v layout.Viewport) bool {
	switch v {
	case layout.Desktop:
		return index%layout.GeometryFor(layout.Desktop).CardsPerPage == 0
	case layout.Mobile:
		return index < (total+1)/2
	default:
		// Tablet cards are uniform; any size difference is pure styling.
		return false
	}
}

// imageSuffix maps a viewport class to the responsive asset suffix the image
// pipeline produces for each base path.
var imageSuffix = map[layout.Viewport]string{
	layout.Mobile:  "-mobile.jpg",
	layout.Tablet:  "-tablet.jpg",
	layout.Desktop: "-desktop.jpg",
}

// ImagePath resolves an item's image base path to the concrete asset for the
// given viewport.
func ImagePath(base string, v layout.Viewport) string {
	suffix, ok := imageSuffix[v]
	if !ok {
		suffix = imageSuffix[layout.Desktop]
	}
	return base + suffix
}

// Plan computes the card descriptions for an already reordered item list.
// It must be given the reordered list: size by index is meaningless against
// canonical order.
func Plan(items []content.Item, v layout.Viewport) []Card {
	out := make([]Card, len(items))
	for i, it := range items {
		out[i] = Card{
			Item:     it,
			Position: i,
			Large:    IsLarge(i, len(items), v),
			Image:    ImagePath(it.Image, v),
		}
	}
	return out
}
