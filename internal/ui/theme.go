// Package ui provides the terminal presentation layer: color themes,
// headless-mode detection, and progress indicators that degrade to plain
// log lines when no TTY is attached.
package ui

// ThemeConfig selects the color palette and whether color is used at all.
type ThemeConfig struct {
	// NoColor disables all styling; components fall back to plain text.
	NoColor bool

	// Mode selects the palette: "dark", "light", or "auto" (defaults to dark).
	Mode string
}

// Colors holds the hex color values used by UI components.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
	Border    string
}

// Theme carries the resolved palette for UI components.
type Theme struct {
	NoColor bool
	Mode    string
	Colors  Colors
}

// darkColors is the palette for dark terminal backgrounds.
var darkColors = Colors{
	Primary:   "#DA7756",
	Secondary: "#F0B8A4",
	Success:   "#10B981",
	Warning:   "#F59E0B",
	Error:     "#EF4444",
	Muted:     "#6B7280",
	Border:    "#4B5563",
}

// lightColors is the palette for light terminal backgrounds.
var lightColors = Colors{
	Primary:   "#C45A3C",
	Secondary: "#E39B82",
	Success:   "#059669",
	Warning:   "#D97706",
	Error:     "#DC2626",
	Muted:     "#9CA3AF",
	Border:    "#D1D5DB",
}

// NewTheme resolves a Theme from the given config. Unknown modes fall back
// to the dark palette.
func NewTheme(cfg ThemeConfig) *Theme {
	mode := cfg.Mode
	colors := darkColors
	switch mode {
	case "light":
		colors = lightColors
	case "dark", "auto", "":
		mode = "dark"
		colors = darkColors
	default:
		mode = "dark"
	}
	return &Theme{
		NoColor: cfg.NoColor,
		Mode:    mode,
		Colors:  colors,
	}
}
