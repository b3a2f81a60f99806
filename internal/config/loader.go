package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/seima-scanner/seima-cli/internal/defs"
	"gopkg.in/yaml.v3"
)

// Loader reads configuration from the site's YAML config file.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu     sync.RWMutex
	loaded bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads config.yaml from the given .seima directory and returns a
// Config with defaults applied for missing fields. A missing file yields
// pure defaults; a file with invalid YAML is an error, never a partial
// configuration.
func (l *Loader) Load(configDir string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loaded = false
	cfg := NewDefaultConfig()

	found, err := loadYAMLFile(filepath.Clean(configDir), defs.ConfigYAML, cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Debug("config file not found, using defaults", "dir", configDir)
		return cfg, nil
	}

	l.loaded = true
	return cfg, nil
}

// Loaded reports whether the last Load call found a config file.
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", filename, ErrInvalidYAML, err)
	}

	return true, nil
}
