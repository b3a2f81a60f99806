package assets

import (
	"encoding/json"
	"fmt"
	"os"
)

// EncodeManifest renders the manifest bytes for the given names: a JSON
// array of strings with two-space indentation. A nil or empty slice encodes
// as an empty array, never null. The same names always produce the same
// bytes, so regenerating an unchanged folder rewrites identical content.
func EncodeManifest(names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return data, nil
}

// WriteManifest encodes names and overwrites the manifest file at path.
// The previous content is always replaced in full, never merged.
func WriteManifest(path string, names []string) error {
	data, err := EncodeManifest(names)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}
