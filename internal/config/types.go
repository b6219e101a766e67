package config

import "github.com/ekozhina/bridgeway/internal/layout"

// Config is the top-level bridgeway configuration, corresponding to
// bridgeway.yml.
type Config struct {
	// SiteName appears in page titles and the header.
	SiteName string `yaml:"site_name" koanf:"site_name"`
	// Port is the HTTP port of `bridgeway serve`.
	Port int `yaml:"port" koanf:"port"`
	// ContentSource is the content document location: an HTTP(S) URL or a
	// local file path.
	ContentSource string `yaml:"content_source" koanf:"content_source"`
	// AssetsDir holds static assets copied into the built site.
	AssetsDir string `yaml:"assets_dir" koanf:"assets_dir"`
	// OutputDir receives the built site.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	// DataDir holds the SQLite database with form submissions.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`
	// FormEndpoint is where feedback submissions are forwarded,
	// form-encoded. Empty disables forwarding.
	FormEndpoint string `yaml:"form_endpoint" koanf:"form_endpoint"`
	// Breakpoints are the viewport thresholds. They must match the
	// stylesheet layer.
	Breakpoints layout.Breakpoints `yaml:"breakpoints" koanf:"breakpoints"`
	// AssetInclude/AssetExclude are doublestar globs selecting which files
	// under AssetsDir are copied.
	AssetInclude []string `yaml:"asset_include" koanf:"asset_include"`
	AssetExclude []string `yaml:"asset_exclude" koanf:"asset_exclude"`
	// LiveReload enables the file watcher and the /ws/reload channel.
	LiveReload bool `yaml:"live_reload" koanf:"live_reload"`
}
