package defs

// Common file and directory names used across the project.
const (
	// AssetsDir is the folder under the site root that holds the published PDFs.
	AssetsDir = "assets"

	// AssetExt is the file extension the scanner matches, compared literally.
	AssetExt = ".pdf"

	// ManifestJSON is the generated asset manifest consumed by the site.
	ManifestJSON = "assets-list.json"

	// ConfigDir is the per-site configuration directory under the site root.
	ConfigDir = ".seima"

	// ConfigYAML is the configuration file inside ConfigDir.
	ConfigYAML = "config.yaml"

	// DotEnv is the optional environment file loaded before env overrides apply.
	DotEnv = ".env"
)
