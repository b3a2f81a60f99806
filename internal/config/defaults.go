package config

import (
	"github.com/seima-scanner/seima-cli/internal/defs"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultPort = 8080

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
// A site with no config file still scans assets/ for PDFs and serves on the
// default port.
func NewDefaultConfig() *Config {
	return &Config{
		Site:   NewDefaultSiteConfig(),
		Server: NewDefaultServerConfig(),
		Log:    NewDefaultLogConfig(),
	}
}

// NewDefaultSiteConfig returns a SiteConfig with default values.
func NewDefaultSiteConfig() SiteConfig {
	return SiteConfig{
		AssetsDir: defs.AssetsDir,
		AssetExt:  defs.AssetExt,
		Output:    defs.ManifestJSON,
	}
}

// NewDefaultServerConfig returns a ServerConfig with default values.
func NewDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:        DefaultPort,
		OpenBrowser: true,
	}
}

// NewDefaultLogConfig returns a LogConfig with default values.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  DefaultLogLevel,
		Format: DefaultLogFormat,
	}
}
