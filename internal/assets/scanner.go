package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/seima-scanner/seima-cli/internal/defs"
)

// Options controls which files the scanner collects and where the manifest
// is written. All names are single path elements resolved under the root.
type Options struct {
	Dir    string // assets directory name under the root
	Ext    string // literal filename suffix to match
	Output string // manifest file name under the root
}

// DefaultOptions returns the standard site layout: assets/*.pdf listed in
// assets-list.json.
func DefaultOptions() Options {
	return Options{
		Dir:    defs.AssetsDir,
		Ext:    defs.AssetExt,
		Output: defs.ManifestJSON,
	}
}

// Report summarizes one manifest generation run.
type Report struct {
	Names      []string // matched file names, ascending
	OutputPath string   // absolute or root-relative manifest path as written
}

// Scanner lists matching asset files under a site root and writes the
// manifest. It does not watch for changes; every run is a full regeneration.
type Scanner struct {
	root   string
	opts   Options
	logger *slog.Logger
}

// NewScanner creates a Scanner for the given site root. Zero-value Options
// fields fall back to the defaults.
func NewScanner(root string, opts Options, logger *slog.Logger) *Scanner {
	def := DefaultOptions()
	if opts.Dir == "" {
		opts.Dir = def.Dir
	}
	if opts.Ext == "" {
		opts.Ext = def.Ext
	}
	if opts.Output == "" {
		opts.Output = def.Output
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{
		root:   filepath.Clean(root),
		opts:   opts,
		logger: logger,
	}
}

// Root returns the site root the scanner resolves names against.
func (s *Scanner) Root() string {
	return s.root
}

// AssetsDir returns the directory the scanner reads.
func (s *Scanner) AssetsDir() string {
	return filepath.Join(s.root, s.opts.Dir)
}

// OutputPath returns the manifest path the scanner writes.
func (s *Scanner) OutputPath() string {
	return filepath.Join(s.root, s.opts.Output)
}

// Match filters a directory listing to regular files whose name ends with
// the literal suffix ext and returns the names in ascending byte order.
// Subdirectories and symlinks never match, whatever they are named.
func Match(entries []fs.DirEntry, ext string) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names
}

// Scan lists the immediate entries of the assets directory and returns the
// matching names sorted ascending. It never recurses. A missing assets
// directory reports ErrAssetsDirMissing; any other listing failure is
// returned as-is.
func (s *Scanner) Scan() ([]string, error) {
	dir := s.AssetsDir()
	s.logger.Debug("scanning assets directory", "dir", dir, "ext", s.opts.Ext)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetsDirMissing, dir)
		}
		return nil, fmt.Errorf("read assets directory %s: %w", dir, err)
	}

	names := Match(entries, s.opts.Ext)
	s.logger.Debug("assets matched", "count", len(names))
	return names, nil
}

// Generate runs the full pipeline: scan, sort, encode, and overwrite the
// manifest. When the assets directory is missing no file is touched and the
// wrapped ErrAssetsDirMissing is returned for the caller to downgrade.
func (s *Scanner) Generate() (*Report, error) {
	names, err := s.Scan()
	if err != nil {
		return nil, err
	}

	out := s.OutputPath()
	if err := WriteManifest(out, names); err != nil {
		return nil, err
	}

	s.logger.Debug("manifest written", "path", out, "entries", len(names))
	return &Report{Names: names, OutputPath: out}, nil
}
