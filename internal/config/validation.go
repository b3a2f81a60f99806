package config

import (
	"strings"
)

// Validate checks the configuration for correctness. Defaults are applied
// before validation, so every field is expected to carry a usable value.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateSiteConfig(&cfg.Site)...)
	errs = append(errs, validateServerConfig(&cfg.Server)...)
	errs = append(errs, validateLogConfig(&cfg.Log)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateSiteConfig checks the site layout names. Each must be a single
// path element so it stays inside the site root.
func validateSiteConfig(s *SiteConfig) []ValidationError {
	var errs []ValidationError

	if msg := checkPathElement(s.AssetsDir); msg != "" {
		errs = append(errs, ValidationError{
			Field:   "site.assets_dir",
			Message: msg,
			Value:   s.AssetsDir,
			Wrapped: ErrInvalidConfig,
		})
	}

	if !strings.HasPrefix(s.AssetExt, ".") || len(s.AssetExt) < 2 {
		errs = append(errs, ValidationError{
			Field:   "site.asset_ext",
			Message: "must start with a dot followed by the extension (example: .pdf)",
			Value:   s.AssetExt,
			Wrapped: ErrInvalidConfig,
		})
	}

	if msg := checkPathElement(s.Output); msg != "" {
		errs = append(errs, ValidationError{
			Field:   "site.output",
			Message: msg,
			Value:   s.Output,
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

// validateServerConfig checks the development server settings.
func validateServerConfig(s *ServerConfig) []ValidationError {
	if s.Port < 1 || s.Port > 65535 {
		return []ValidationError{
			{
				Field:   "server.port",
				Message: "must be between 1 and 65535",
				Value:   s.Port,
				Wrapped: ErrInvalidPort,
			},
		}
	}
	return nil
}

// validLogLevels lists recognized log level names.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats lists recognized log output formats.
var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// validateLogConfig checks the logging settings.
func validateLogConfig(l *LogConfig) []ValidationError {
	var errs []ValidationError

	if !validLogLevels[strings.ToLower(l.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "must be one of: debug, info, warn, error",
			Value:   l.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	if !validLogFormats[strings.ToLower(l.Format)] {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: "must be one of: text, json",
			Value:   l.Format,
			Wrapped: ErrInvalidLogFormat,
		})
	}

	return errs
}

// checkPathElement verifies a configured name is a single, relative path
// element. It returns an empty string when the name is acceptable.
func checkPathElement(name string) string {
	switch {
	case name == "":
		return "required field is empty"
	case name == "." || name == "..":
		return "must name a file or directory, not a dot path"
	case strings.ContainsAny(name, `/\`):
		return "must be a single name without path separators"
	default:
		return ""
	}
}
