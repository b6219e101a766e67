package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ekozhina/bridgeway/internal/layout"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Breakpoints != layout.DefaultBreakpoints {
		t.Errorf("expected default breakpoints %+v, got %+v", layout.DefaultBreakpoints, cfg.Breakpoints)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bridgeway.yml")

	original := DefaultConfig()
	original.SiteName = "StudyBridge"
	original.Port = 9000
	original.ContentSource = "https://cdn.example.com/content.json"
	original.FormEndpoint = "https://forms.example.com/submit"
	original.Breakpoints = layout.Breakpoints{Tablet: 600, Desktop: 900}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.ContentSource != original.ContentSource {
		t.Errorf("content_source: got %q, want %q", loaded.ContentSource, original.ContentSource)
	}
	if loaded.FormEndpoint != original.FormEndpoint {
		t.Errorf("form_endpoint: got %q, want %q", loaded.FormEndpoint, original.FormEndpoint)
	}
	if loaded.Breakpoints != original.Breakpoints {
		t.Errorf("breakpoints: got %+v, want %+v", loaded.Breakpoints, original.Breakpoints)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 8080 {
		t.Errorf("port: got %d, want default 8080", loaded.Port)
	}
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("BRIDGEWAY_SITE_NAME", "Overridden")
	defer os.Unsetenv("BRIDGEWAY_SITE_NAME")

	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SiteName != "Overridden" {
		t.Errorf("site_name: got %q, want env override", loaded.SiteName)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("port 0 accepted")
	}

	cfg = DefaultConfig()
	cfg.ContentSource = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty content_source accepted")
	}

	cfg = DefaultConfig()
	cfg.Breakpoints = layout.Breakpoints{Tablet: 1200, Desktop: 800}
	if err := cfg.Validate(); err == nil {
		t.Error("inverted breakpoints accepted")
	}
}
