package site

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/ekozhina/bridgeway/internal/config"
	"github.com/ekozhina/bridgeway/internal/news"
	"github.com/ekozhina/bridgeway/internal/progress"
)

// Generator builds the static landing site: the rendered index page plus
// the copied assets.
type Generator struct {
	cfg      *config.Config
	viewer   *news.Viewer
	reporter progress.Reporter
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config, viewer *news.Viewer) *Generator {
	return &Generator{
		cfg:      cfg,
		viewer:   viewer,
		reporter: progress.NewReporter(),
	}
}

// pageData holds the data passed to the index template.
type pageData struct {
	SiteName   string
	Year       int
	Categories []string
	// ActiveCategory is the pre-selected tab.
	ActiveCategory string
	// Cards is the server-rendered initial news state. It is the degraded
	// fallback when the browser-side loader cannot fetch content, so it is
	// rendered only after a successful fetch here at build time.
	Cards      []news.Card
	Carousel   carouselData
	LiveReload bool
}

type carouselData struct {
	TotalSlides int
	WindowStart int
	WindowCount int
}

// Generate builds the site into the output directory. Returns the number of
// files written.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	categories, err := g.viewer.Categories(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading content: %w", err)
	}
	if len(categories) == 0 {
		return 0, fmt.Errorf("content document has no categories")
	}

	active := categories[0]
	state, err := g.viewer.View(ctx, news.Request{Category: active, Width: defaultBuildWidth})
	if err != nil {
		return 0, fmt.Errorf("computing initial news view: %w", err)
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return 0, err
	}

	assets, err := listAssets(g.cfg.AssetsDir, g.cfg.AssetInclude, g.cfg.AssetExclude)
	if err != nil {
		return 0, fmt.Errorf("listing assets: %w", err)
	}

	g.reporter.Start(len(assets) + 1)
	defer g.reporter.Finish()

	written := 0
	for i, rel := range assets {
		if err := copyAsset(g.cfg.AssetsDir, g.cfg.OutputDir, rel); err != nil {
			return written, fmt.Errorf("copying %s: %w", rel, err)
		}
		written++
		g.reporter.Update(i+1, rel)
	}

	if err := g.renderIndex(categories, active, state); err != nil {
		return written, fmt.Errorf("rendering index: %w", err)
	}
	written++
	g.reporter.Update(len(assets)+1, "index.html")

	return written, nil
}

// defaultBuildWidth is the viewport the static fallback is rendered for.
// Desktop keeps the fallback in canonical reading order.
const defaultBuildWidth = 1280

// renderIndex writes index.html from the page template.
func (g *Generator) renderIndex(categories []string, active string, state news.ViewState) error {
	tmpl, err := template.New("index").Funcs(template.FuncMap{
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		"add": func(a, b int) int { return a + b },
	}).Parse(indexTemplate)
	if err != nil {
		return fmt.Errorf("parsing page template: %w", err)
	}

	data := pageData{
		SiteName:       g.cfg.SiteName,
		Year:           time.Now().Year(),
		Categories:     categories,
		ActiveCategory: active,
		Cards:          state.Cards,
		Carousel: carouselData{
			TotalSlides: state.Carousel.TotalSlides,
			WindowStart: state.Carousel.Window.Start,
			WindowCount: state.Carousel.Window.Count,
		},
		LiveReload: g.cfg.LiveReload,
	}

	f, err := os.Create(filepath.Join(g.cfg.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}
