package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager manages headless (non-interactive) mode detection for UI
// components running without a TTY.
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection. Otherwise, it checks whether
// os.Stdin is connected to a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
