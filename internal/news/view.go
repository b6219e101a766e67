// Package news assembles the view state of the news section. One request
// runs the whole pipeline: fetch the category, permute it for the grid-fill
// algorithm, compute card sizing and image variants, and derive the carousel
// navigation state for the requested viewport width.
package news

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"sync"

	"github.com/yuin/goldmark"

	"github.com/ekozhina/bridgeway/internal/cards"
	"github.com/ekozhina/bridgeway/internal/carousel"
	"github.com/ekozhina/bridgeway/internal/content"
	"github.com/ekozhina/bridgeway/internal/grid"
	"github.com/ekozhina/bridgeway/internal/layout"
)

// Request identifies one view computation.
type Request struct {
	Category string
	// Width is the visitor's window width in px.
	Width int
	// ActiveIndex is the slide the visitor is on, in slide index space.
	// Ignored (reset to 0) when the category content was not rendered yet.
	ActiveIndex int
}

// Card is a news card ready for the template layer: the computed render
// description plus the item description converted from markdown.
type Card struct {
	cards.Card
	DescriptionHTML template.HTML `json:"description_html"`
}

// ViewState is everything the page needs to redraw the news section.
type ViewState struct {
	Category string         `json:"category"`
	Cards    []Card         `json:"cards"`
	Carousel carousel.State `json:"carousel"`
}

// Viewer computes news view states. It owns the section's carousel, so user
// navigation, viewport changes and category switches all flow through the
// same state.
type Viewer struct {
	store       *content.Store
	breakpoints layout.Breakpoints
	md          goldmark.Markdown

	mu sync.Mutex
	// current carousel per category; lazily created on first view.
	carousels map[string]*carousel.Carousel
}

// NewViewer creates a Viewer over the given content store.
func NewViewer(store *content.Store, bp layout.Breakpoints) *Viewer {
	return &Viewer{
		store:       store,
		breakpoints: bp,
		md:          goldmark.New(),
		carousels:   make(map[string]*carousel.Carousel),
	}
}

// View runs the pipeline for one request. Rendering happens strictly after a
// successful fetch: on any store error no partial state is produced and the
// page keeps whatever it last showed.
func (v *Viewer) View(ctx context.Context, req Request) (ViewState, error) {
	items, err := v.store.Get(ctx, req.Category)
	if err != nil {
		return ViewState{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	c, ok := v.carousels[req.Category]
	if !ok {
		c = carousel.New(req.Width, v.breakpoints)
		c.Rescan(len(items))
		v.carousels[req.Category] = c
	} else {
		c.Resize(req.Width)
	}
	c.JumpTo(req.ActiveIndex)

	viewport := c.Viewport()
	reordered := grid.Reorder(items, viewport)
	plan := cards.Plan(reordered, viewport)

	out := make([]Card, len(plan))
	for i, pc := range plan {
		out[i] = Card{Card: pc, DescriptionHTML: v.renderDescription(pc.Item.Description)}
	}

	return ViewState{
		Category: req.Category,
		Cards:    out,
		Carousel: c.State(),
	}, nil
}

// Categories lists the available category keys.
func (v *Viewer) Categories(ctx context.Context) ([]string, error) {
	return v.store.Categories(ctx)
}

// Reload drops cached content and carousel state after the content document
// changed on disk. The next view re-fetches and starts from slide zero.
func (v *Viewer) Reload() {
	v.store.Reload()
	v.mu.Lock()
	v.carousels = make(map[string]*carousel.Carousel)
	v.mu.Unlock()
}

// renderDescription converts a markdown description to HTML. Invalid
// markdown falls back to the escaped raw text.
func (v *Viewer) renderDescription(src string) template.HTML {
	var buf bytes.Buffer
	if err := v.md.Convert([]byte(src), &buf); err != nil {
		log.Printf("news: rendering description: %v", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// ErrorStatus maps a store error to the HTTP status the API responds with.
func ErrorStatus(err error) (int, string) {
	switch {
	case isNetworkError(err):
		return 502, "content source unreachable"
	default:
		return 500, fmt.Sprintf("content error: %v", err)
	}
}

func isNetworkError(err error) bool {
	var ne *content.NetworkError
	return errors.As(err, &ne)
}
