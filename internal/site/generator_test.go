package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ekozhina/bridgeway/internal/config"
	"github.com/ekozhina/bridgeway/internal/content"
	"github.com/ekozhina/bridgeway/internal/layout"
	"github.com/ekozhina/bridgeway/internal/news"
)

const testDocument = `{
	"news": [
		{"date": "01/02/2024", "title": "Spring intake", "description": "Applications **open**.", "image": "img/news/spring", "link": "https://example.com/1"},
		{"date": "15/03/2024", "title": "New partners", "description": "Three schools joined.", "image": "img/news/partners", "link": "https://example.com/2"},
		{"date": "20/04/2024", "title": "Open day", "description": "Visit the campus.", "image": "img/news/open-day", "link": "https://example.com/3"},
		{"date": "05/05/2024", "title": "Scholarships", "description": "Two grants available.", "image": "img/news/grants", "link": "https://example.com/4"}
	]
}`

func setupGenerator(t *testing.T) (*Generator, *config.Config) {
	t.Helper()
	dir := t.TempDir()

	contentPath := filepath.Join(dir, "content.json")
	if err := os.WriteFile(contentPath, []byte(testDocument), 0o644); err != nil {
		t.Fatalf("writing content: %v", err)
	}

	assetsDir := filepath.Join(dir, "assets")
	for _, f := range []string{"css/style.css", "js/main.js", "img/hero.jpg"} {
		path := filepath.Join(assetsDir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("/* "+f+" */"), 0o644); err != nil {
			t.Fatalf("writing asset: %v", err)
		}
	}
	// An excluded file that must not be copied.
	if err := os.WriteFile(filepath.Join(assetsDir, "css", "style.css.map"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing map: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.SiteName = "BridgeWay"
	cfg.ContentSource = contentPath
	cfg.AssetsDir = assetsDir
	cfg.OutputDir = filepath.Join(dir, "public")

	viewer := news.NewViewer(content.NewStore(contentPath), layout.DefaultBreakpoints)
	return NewGenerator(cfg, viewer), cfg
}

func TestGenerate(t *testing.T) {
	g, cfg := setupGenerator(t)

	n, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Three assets plus index.html; the source map is excluded.
	if n != 4 {
		t.Errorf("files written = %d, want 4", n)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	html := string(data)

	if !strings.Contains(html, "BridgeWay") {
		t.Error("index missing site name")
	}
	if !strings.Contains(html, "Spring intake") {
		t.Error("index missing server-rendered news fallback")
	}
	if !strings.Contains(html, "<strong>open</strong>") {
		t.Error("index missing rendered markdown description")
	}
	if !strings.Contains(html, `data-category="news"`) {
		t.Error("index missing category tab")
	}
	// Desktop fallback: first card of the page is large.
	if !strings.Contains(html, "news__card--large") {
		t.Error("index missing large card variant")
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "css", "style.css")); err != nil {
		t.Errorf("asset not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "css", "style.css.map")); !os.IsNotExist(err) {
		t.Error("excluded asset was copied")
	}
}

func TestGenerateMissingContent(t *testing.T) {
	g, cfg := setupGenerator(t)
	cfg.ContentSource = filepath.Join(t.TempDir(), "absent.json")

	viewer := news.NewViewer(content.NewStore(cfg.ContentSource), layout.DefaultBreakpoints)
	g = NewGenerator(cfg, viewer)

	if _, err := g.Generate(context.Background()); err == nil {
		t.Fatal("expected error for missing content document")
	}
	// Nothing should be rendered from placeholder state.
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); !os.IsNotExist(err) {
		t.Error("index written despite failed fetch")
	}
}

func TestListAssetsMissingDir(t *testing.T) {
	assets, err := listAssets(filepath.Join(t.TempDir(), "absent"), nil, nil)
	if err != nil {
		t.Fatalf("listAssets: %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("assets = %v, want none", assets)
	}
}
