package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/seima-scanner/seima-cli/internal/defs"
	"gopkg.in/yaml.v3"
)

// managerState represents the lifecycle state of the ConfigManager.
type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
)

// ConfigManager provides thread-safe configuration management.
// It must be initialized via Load() before use.
type ConfigManager struct {
	mu     sync.RWMutex
	config *Config
	root   string
	state  managerState
	loader *Loader
}

// NewConfigManager creates a new ConfigManager instance in uninitialized state.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		loader: NewLoader(),
		state:  stateUninitialized,
	}
}

// Load reads configuration from the site root's .seima/ directory.
// A .env file at the root is loaded into the environment first, then
// SEIMA_* environment variables override file values. The merged
// configuration is validated before being stored.
func (m *ConfigManager) Load(siteRoot string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.loadLocked(siteRoot)
	if err != nil {
		return nil, err
	}

	m.config = cfg
	m.root = siteRoot
	m.state = stateInitialized

	return cfg, nil
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *ConfigManager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Root returns the site root the configuration was loaded from.
func (m *ConfigManager) Root() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// Reload forces a re-read from disk, replacing the in-memory configuration.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	cfg, err := m.loadLocked(m.root)
	if err != nil {
		return err
	}

	m.config = cfg
	return nil
}

// Save persists the current configuration to .seima/config.yaml atomically
// using temp file + os.Rename.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	return WriteConfig(m.root, m.config)
}

// loadLocked runs the full load pipeline. Caller must hold Lock.
func (m *ConfigManager) loadLocked(siteRoot string) (*Config, error) {
	root := filepath.Clean(siteRoot)
	configDir := filepath.Join(root, defs.ConfigDir)

	// Support SEIMA_CONFIG_DIR environment variable override
	if envDir := os.Getenv("SEIMA_CONFIG_DIR"); envDir != "" {
		configDir = filepath.Clean(envDir)
	}

	// A .env next to the config feeds the overrides below; missing is fine.
	_ = godotenv.Load(filepath.Join(root, defs.DotEnv))

	cfg, err := m.loader.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Apply environment variable overrides (higher priority than files)
	applyEnvOverrides(cfg)

	// Validate the merged configuration
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("SEIMA_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("SEIMA_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	if noColor := os.Getenv("SEIMA_NO_COLOR"); noColor == "true" || noColor == "1" {
		cfg.Log.NoColor = true
	}
	if port := os.Getenv("SEIMA_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = n
		}
	}
}

// WriteConfig marshals cfg and writes it to the site root's
// .seima/config.yaml atomically, creating the directory when needed.
func WriteConfig(siteRoot string, cfg *Config) error {
	configDir := filepath.Join(filepath.Clean(siteRoot), defs.ConfigDir)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := atomicWrite(filepath.Join(configDir, defs.ConfigYAML), data); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".seima-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
