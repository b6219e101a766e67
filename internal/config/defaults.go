package config

import "github.com/ekozhina/bridgeway/internal/layout"

// DefaultAssetIncludes are the asset globs copied into the site by default.
var DefaultAssetIncludes = []string{
	"**/*.css",
	"**/*.js",
	"**/*.{jpg,jpeg,png,webp,svg,avif}",
	"**/*.{woff,woff2}",
	"**/*.ico",
}

// DefaultAssetExcludes are glob patterns never copied.
var DefaultAssetExcludes = []string{
	"**/*.map",
	"**/.*",
	"node_modules/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:      "BridgeWay",
		Port:          8080,
		ContentSource: "content/content.json",
		AssetsDir:     "assets",
		OutputDir:     "public",
		DataDir:       "data",
		Breakpoints:   layout.DefaultBreakpoints,
		AssetInclude:  DefaultAssetIncludes,
		AssetExclude:  DefaultAssetExcludes,
		LiveReload:    true,
	}
}
