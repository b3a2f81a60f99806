package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent Seima-themed terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

// cardStyle returns a lipgloss style for a rounded-border card.
func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderCard renders content inside a rounded border box with a styled title.
func renderCard(title, content string) string {
	titleLine := cliPrimary.Bold(true).Render(title)
	body := titleLine + "\n\n" + content
	return cardStyle().Render(body)
}

// renderSuccessCard renders a success message inside a rounded border card.
func renderSuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(symSuccess() + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle().Render(body.String())
}

// kvPair is a key-value line in a card body.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key-value lines with muted keys.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	lines := make([]string, len(pairs))
	for i, p := range pairs {
		key := fmt.Sprintf("%-*s", width+1, p.key+":")
		lines[i] = cliMuted.Render(key) + " " + p.value
	}
	return strings.Join(lines, "\n")
}
