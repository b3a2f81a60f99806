package server

import (
	"fmt"
	"os/exec"
	"runtime"
)

// BrowserOpener abstracts browser opening for testability.
type BrowserOpener interface {
	Open(url string) error
}

// Browser opens URLs with the operating system's default browser.
type Browser struct{}

// Compile-time interface check.
var _ BrowserOpener = (*Browser)(nil)

// NewBrowser creates a Browser for the current operating system.
func NewBrowser() *Browser {
	return &Browser{}
}

// Open launches the default browser at url. The command is started
// without waiting for it to exit.
func (b *Browser) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
