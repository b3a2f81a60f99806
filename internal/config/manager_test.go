package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// writeSiteConfig writes a config.yaml under root/.seima for tests.
func writeSiteConfig(t *testing.T, root, content string) {
	t.Helper()
	configDir := filepath.Join(root, ".seima")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
}

func TestConfigManagerLoadDefaults(t *testing.T) {
	t.Parallel()

	m := NewConfigManager()
	cfg, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Site.AssetsDir != "assets" {
		t.Errorf("Site.AssetsDir = %q, want default", cfg.Site.AssetsDir)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if got := m.Get(); got != cfg {
		t.Error("Get() should return the loaded config")
	}
}

func TestConfigManagerLoadFromFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSiteConfig(t, root, `site:
  assets_dir: files
server:
  port: 9000
log:
  level: debug
`)

	m := NewConfigManager()
	cfg, err := m.Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Site.AssetsDir != "files" {
		t.Errorf("Site.AssetsDir = %q, want %q", cfg.Site.AssetsDir, "files")
	}
	// Fields absent from the file keep their defaults.
	if cfg.Site.AssetExt != ".pdf" {
		t.Errorf("Site.AssetExt = %q, want default %q", cfg.Site.AssetExt, ".pdf")
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want default", cfg.Log.Format)
	}
}

func TestConfigManagerLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSiteConfig(t, root, "site: [unclosed\n")

	m := NewConfigManager()
	if _, err := m.Load(root); !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("error should wrap ErrInvalidYAML, got: %v", err)
	}
}

func TestConfigManagerLoadInvalidValues(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSiteConfig(t, root, `server:
  port: 99999
`)

	m := NewConfigManager()
	_, err := m.Load(root)
	if !errors.Is(err, ErrInvalidPort) {
		t.Errorf("error should wrap ErrInvalidPort, got: %v", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should match ErrInvalidConfig, got: %v", err)
	}
}

func TestConfigManagerEnvOverrides(t *testing.T) {
	t.Setenv("SEIMA_LOG_LEVEL", "debug")
	t.Setenv("SEIMA_LOG_FORMAT", "json")
	t.Setenv("SEIMA_NO_COLOR", "1")

	m := NewConfigManager()
	cfg, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want env override %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want env override %q", cfg.Log.Format, "json")
	}
	if !cfg.Log.NoColor {
		t.Error("Log.NoColor should be set by SEIMA_NO_COLOR=1")
	}
}

func TestConfigManagerEnvOverridesBeatFile(t *testing.T) {
	t.Setenv("SEIMA_PORT", "7000")

	root := t.TempDir()
	writeSiteConfig(t, root, `server:
  port: 9000
`)

	m := NewConfigManager()
	cfg, err := m.Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want env override 7000", cfg.Server.Port)
	}
}

func TestConfigManagerEnvOverridePortInvalid(t *testing.T) {
	t.Setenv("SEIMA_PORT", "not-a-number")

	m := NewConfigManager()
	cfg, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want default after unparsable override", cfg.Server.Port)
	}
}

func TestConfigManagerEnvOverrideConfigDir(t *testing.T) {
	altDir := filepath.Join(t.TempDir(), "elsewhere")
	if err := os.MkdirAll(altDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(altDir, "config.yaml"), []byte("server:\n  port: 8123\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	t.Setenv("SEIMA_CONFIG_DIR", altDir)

	m := NewConfigManager()
	cfg, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("Server.Port = %d, want 8123 from SEIMA_CONFIG_DIR", cfg.Server.Port)
	}
}

func TestConfigManagerDotEnv(t *testing.T) {
	// godotenv writes into the process environment; keep the key clear on
	// both sides of the test.
	os.Unsetenv("SEIMA_PORT")
	t.Cleanup(func() { os.Unsetenv("SEIMA_PORT") })

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("SEIMA_PORT=9191\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	m := NewConfigManager()
	cfg, err := m.Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191 from .env", cfg.Server.Port)
	}
}

func TestConfigManagerGetBeforeLoad(t *testing.T) {
	t.Parallel()

	m := NewConfigManager()
	if got := m.Get(); got != nil {
		t.Errorf("Get() before Load = %v, want nil", got)
	}
}

func TestConfigManagerReloadBeforeLoad(t *testing.T) {
	t.Parallel()

	m := NewConfigManager()
	if err := m.Reload(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Reload() before Load should return ErrNotInitialized, got: %v", err)
	}
}

func TestConfigManagerSaveBeforeLoad(t *testing.T) {
	t.Parallel()

	m := NewConfigManager()
	if err := m.Save(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Save() before Load should return ErrNotInitialized, got: %v", err)
	}
}

func TestConfigManagerSaveRoundTrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	m := NewConfigManager()
	cfg, err := m.Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cfg.Server.Port = 9000
	cfg.Site.AssetsDir = "scans"
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	fresh := NewConfigManager()
	loaded, err := fresh.Load(root)
	if err != nil {
		t.Fatalf("Load() after Save error: %v", err)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want saved 9000", loaded.Server.Port)
	}
	if loaded.Site.AssetsDir != "scans" {
		t.Errorf("Site.AssetsDir = %q, want saved %q", loaded.Site.AssetsDir, "scans")
	}
}

func TestConfigManagerReload(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	m := NewConfigManager()
	if _, err := m.Load(root); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	writeSiteConfig(t, root, "server:\n  port: 8500\n")
	if err := m.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	if got := m.Get().Server.Port; got != 8500 {
		t.Errorf("Server.Port after Reload = %d, want 8500", got)
	}
}

func TestLoaderLoaded(t *testing.T) {
	t.Parallel()

	l := NewLoader()
	if l.Loaded() {
		t.Error("Loaded() should be false before any Load call")
	}

	emptyDir := t.TempDir()
	if _, err := l.Load(emptyDir); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if l.Loaded() {
		t.Error("Loaded() should be false when no config file exists")
	}

	root := t.TempDir()
	writeSiteConfig(t, root, "server:\n  port: 8100\n")
	if _, err := l.Load(filepath.Join(root, ".seima")); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !l.Loaded() {
		t.Error("Loaded() should be true after reading a config file")
	}
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := NewDefaultConfig()
	cfg.Server.Port = 8222

	if err := WriteConfig(root, cfg); err != nil {
		t.Fatalf("WriteConfig() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, ".seima", "config.yaml"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	var decoded Config
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded.Server.Port != 8222 {
		t.Errorf("decoded port = %d, want 8222", decoded.Server.Port)
	}
	if decoded.Site.AssetsDir != "assets" {
		t.Errorf("decoded assets_dir = %q, want %q", decoded.Site.AssetsDir, "assets")
	}
}
