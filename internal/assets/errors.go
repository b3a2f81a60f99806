// Package assets discovers the PDF files published by a Seima Scanner site
// and regenerates the JSON manifest the front end loads them from. The
// scanning core is pure over directory listings so the CLI and the tests
// share one implementation.
package assets

import "errors"

// Sentinel errors for the assets package.
var (
	// ErrAssetsDirMissing indicates the assets directory does not exist.
	// Callers treat this as a clean no-op rather than a failure.
	ErrAssetsDirMissing = errors.New("assets: assets directory not found")
)
