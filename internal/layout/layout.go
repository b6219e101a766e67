package layout

// Viewport identifies one of the three responsive layout classes the
// stylesheet layer distinguishes.
type Viewport string

const (
	Mobile  Viewport = "mobile"
	Tablet  Viewport = "tablet"
	Desktop Viewport = "desktop"
)

// Breakpoints holds the two pixel thresholds that separate the viewport
// classes. They must match the values used by the stylesheet layer, or the
// computed card layout will disagree with the grid the visitor actually sees.
type Breakpoints struct {
	Tablet  int `yaml:"tablet" koanf:"tablet"`
	Desktop int `yaml:"desktop" koanf:"desktop"`
}

// DefaultBreakpoints are the thresholds the stock stylesheets are built for.
var DefaultBreakpoints = Breakpoints{Tablet: 768, Desktop: 1024}

// ClassForWidth maps a window width in px to its viewport class.
func ClassForWidth(width int, bp Breakpoints) Viewport {
	switch {
	case width >= bp.Desktop:
		return Desktop
	case width >= bp.Tablet:
		return Tablet
	default:
		return Mobile
	}
}

// Geometry describes how the news grid is laid out for one viewport class.
// It is the single source of truth for the reorder engine, card sizing,
// arrow paging and the pagination window: every component derives its
// constants from here instead of re-reading breakpoints on its own.
type Geometry struct {
	// Columns and Rows describe one visible page of the grid.
	Columns int
	Rows    int
	// CardsPerPage is Columns*Rows, kept explicit because the carousel
	// configuration is expressed in cards, not in grid cells.
	CardsPerPage int
	// ControlStride is the width-plus-gap of one pagination control in px,
	// used to compute the sliding-window offset.
	ControlStride int
}

var geometries = map[Viewport]Geometry{
	Mobile:  {Columns: 1, Rows: 2, CardsPerPage: 2, ControlStride: 36},
	Tablet:  {Columns: 2, Rows: 2, CardsPerPage: 4, ControlStride: 40},
	Desktop: {Columns: 3, Rows: 1, CardsPerPage: 3, ControlStride: 46},
}

// GeometryFor returns the grid geometry for the given viewport class.
func GeometryFor(v Viewport) Geometry {
	if g, ok := geometries[v]; ok {
		return g
	}
	return geometries[Desktop]
}

// ItemsPerSlide is how many cards the slide engine stacks into one slide.
// With row stacking active (mobile, tablet) one slide is a full column.
func (g Geometry) ItemsPerSlide() int {
	if g.Rows < 1 {
		return 1
	}
	return g.Rows
}

// SlidesPerPage is how many slides fit on one visible page. Arrow paging
// moves by exactly this many slides; it is derived from the card/slide
// ratio rather than configured separately so the two can never drift apart.
func (g Geometry) SlidesPerPage() int {
	return g.CardsPerPage / g.ItemsPerSlide()
}

// SlideCount returns how many slides the engine produces for n cards.
func (g Geometry) SlideCount(n int) int {
	if n <= 0 {
		return 0
	}
	per := g.ItemsPerSlide()
	return (n + per - 1) / per
}
