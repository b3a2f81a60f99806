package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seima-scanner/seima-cli/internal/assets"
	"github.com/seima-scanner/seima-cli/internal/config"
	"github.com/seima-scanner/seima-cli/internal/logger"
	"github.com/seima-scanner/seima-cli/internal/ui"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Regenerate the assets-list.json manifest",
	Long: `Scan the site's assets folder for PDF files and regenerate the
assets-list.json manifest the site viewer loads.

The folder is scanned without recursion; matching file names are sorted
and written as a JSON array, replacing any previous manifest. A missing
assets folder is reported but is not an error.

Examples:
  seima assets                 Scan the assets folder next to the binary
  seima assets --root ~/site   Scan ~/site/assets instead`,
	RunE: runAssets,
}

func init() {
	rootCmd.AddCommand(assetsCmd)

	assetsCmd.Flags().String("root", "", "Site root directory (default: directory of the seima binary)")
}

// resolveSiteRoot determines the site root directory. An explicit --root
// flag wins; otherwise the directory holding the running binary is used,
// so a copy dropped into a site checkout works without arguments.
func resolveSiteRoot(cmd *cobra.Command) (string, error) {
	if root := getStringFlag(cmd, "root"); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("resolve site root %q: %w", root, err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// loadSiteConfig loads and validates the configuration for the site root,
// then initializes the process logger from its log section.
func loadSiteConfig(root string) (*config.Config, error) {
	cfg, err := config.NewConfigManager().Load(root)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Init(cfg.Log.Format, config.ParseLogLevel(cfg.Log.Level))
	return cfg, nil
}

func runAssets(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	root, err := resolveSiteRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadSiteConfig(root)
	if err != nil {
		return err
	}

	theme := ui.NewTheme(ui.ThemeConfig{NoColor: cfg.Log.NoColor})
	progress := ui.NewProgressWithWriter(theme, ui.NewHeadlessManager(), out)
	sp := progress.Spinner("Scanning assets folder for PDF files...")

	scanner := assets.NewScanner(root, assets.Options{
		Dir:    cfg.Site.AssetsDir,
		Ext:    cfg.Site.AssetExt,
		Output: cfg.Site.Output,
	}, logger.Log)

	report, err := scanner.Generate()
	sp.Stop()

	if errors.Is(err, assets.ErrAssetsDirMissing) {
		// Soft failure: a site without an assets folder has nothing to
		// publish yet. The manifest is left exactly as it was.
		_, _ = fmt.Fprintf(out, "%s Assets folder not found at %s\n", symWarning(), scanner.AssetsDir())
		_, _ = fmt.Fprintln(out, cliMuted.Render("Nothing to generate; the manifest was not touched."))
		return nil
	}
	if err != nil {
		_, _ = fmt.Fprintf(out, "%s Error generating assets list: %v\n", symError(), err)
		return fmt.Errorf("generate assets list: %w", err)
	}

	_, _ = fmt.Fprintf(out, "%s Found %d PDF file(s)\n", symSuccess(), len(report.Names))
	for _, name := range report.Names {
		_, _ = fmt.Fprintf(out, "  📄 %s\n", name)
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(
		fmt.Sprintf("Generated %s", cfg.Site.Output),
		renderKeyValueLines([]kvPair{
			{"Manifest", report.OutputPath},
			{"Entries", fmt.Sprintf("%d PDF entries", len(report.Names))},
		}),
	))
	return nil
}
