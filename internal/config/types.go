package config

import (
	"log/slog"
	"strings"
)

// Config is the root configuration aggregate containing all sections of the
// site's .seima/config.yaml file.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// SiteConfig describes the site layout the asset scanner works with.
// All names are single path elements resolved under the site root.
type SiteConfig struct {
	AssetsDir string `yaml:"assets_dir"` // folder holding the published PDFs
	AssetExt  string `yaml:"asset_ext"`  // literal filename suffix to match
	Output    string `yaml:"output"`     // manifest file name
}

// ServerConfig describes the development web server.
type ServerConfig struct {
	Port        int  `yaml:"port"`
	OpenBrowser bool `yaml:"open_browser"`
}

// LogConfig describes logging and terminal output behavior.
type LogConfig struct {
	Level   string `yaml:"level"`  // debug, info, warn, error
	Format  string `yaml:"format"` // text, json
	NoColor bool   `yaml:"no_color"`
}

// ParseLogLevel converts a string log level to slog.Level. Unknown values
// fall back to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
