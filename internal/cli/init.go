package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/seima-scanner/seima-cli/internal/cli/wizard"
	"github.com/seima-scanner/seima-cli/internal/config"
	"github.com/seima-scanner/seima-cli/internal/defs"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the site configuration",
	Long: `Create .seima/config.yaml under the site root.

On a terminal this runs an interactive wizard; in scripts or with
--non-interactive the configuration is assembled from flags and defaults.
Re-running init overwrites the existing configuration.

Examples:
  seima init                      Interactive setup next to the binary
  seima init --root ~/site        Interactive setup for ~/site
  seima init --non-interactive --port 3000`,
	Args:    cobra.NoArgs,
	PreRunE: validateInitFlags,
	RunE:    runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("root", "", "Site root directory (default: directory of the seima binary)")
	initCmd.Flags().String("assets-dir", "", "Assets folder name (default: assets)")
	initCmd.Flags().String("ext", "", "Asset file extension (default: .pdf)")
	initCmd.Flags().Int("port", 0, "Development server port (default: 8080)")
	initCmd.Flags().Bool("open-browser", true, "Open the browser when serving")
	initCmd.Flags().Bool("non-interactive", false, "Skip the interactive wizard; use flags and defaults")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getIntFlag retrieves an int flag value from the command.
func getIntFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0
	}
	return val
}

// validateInitFlags validates flag values before execution.
func validateInitFlags(cmd *cobra.Command, _ []string) error {
	ext := getStringFlag(cmd, "ext")
	if ext != "" && (ext[0] != '.' || len(ext) < 2) {
		return fmt.Errorf("invalid --ext value %q: must start with a dot, like .pdf", ext)
	}

	port := getIntFlag(cmd, "port")
	if port != 0 && (port < 1 || port > 65535) {
		return fmt.Errorf("invalid --port value %d: must be between 1 and 65535", port)
	}

	return nil
}

// runInit assembles the site configuration and writes .seima/config.yaml.
func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	root, err := resolveSiteRoot(cmd)
	if err != nil {
		return err
	}

	// Seed from the existing configuration so re-running init edits the
	// current values instead of resetting them; flags override the seed,
	// and the wizard then confirms or edits the result.
	cfg, err := config.NewConfigManager().Load(root)
	if err != nil {
		_, _ = fmt.Fprintln(out, cliMuted.Render("Existing configuration could not be read; starting from defaults."))
		cfg = config.NewDefaultConfig()
	}
	if v := getStringFlag(cmd, "assets-dir"); v != "" {
		cfg.Site.AssetsDir = v
	}
	if v := getStringFlag(cmd, "ext"); v != "" {
		cfg.Site.AssetExt = v
	}
	if v := getIntFlag(cmd, "port"); v != 0 {
		cfg.Server.Port = v
	}
	if cmd.Flags().Changed("open-browser") {
		cfg.Server.OpenBrowser = getBoolFlag(cmd, "open-browser")
	}

	nonInteractive := getBoolFlag(cmd, "non-interactive")
	if !nonInteractive && isatty.IsTerminal(os.Stdin.Fd()) {
		result, err := wizard.RunWithDefaults(wizard.Defaults{
			AssetsDir:   cfg.Site.AssetsDir,
			AssetExt:    cfg.Site.AssetExt,
			Port:        cfg.Server.Port,
			OpenBrowser: cfg.Server.OpenBrowser,
		})
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Initialization cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		applyWizardResult(cfg, result)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.WriteConfig(root, cfg); err != nil {
		_, _ = fmt.Fprintf(out, "%s Error writing configuration: %v\n", symError(), err)
		return fmt.Errorf("write configuration: %w", err)
	}

	_, _ = fmt.Fprintln(out, renderSuccessCard(
		"Site configuration initialized",
		renderKeyValueLines([]kvPair{
			{"Config", filepath.Join(root, defs.ConfigDir, defs.ConfigYAML)},
			{"Assets folder", cfg.Site.AssetsDir},
			{"Extension", cfg.Site.AssetExt},
			{"Server port", strconv.Itoa(cfg.Server.Port)},
		}),
	))
	return nil
}

// applyWizardResult copies wizard answers into the configuration. The
// wizard validates each answer before storing it, so conversions here
// only guard against empty values.
func applyWizardResult(cfg *config.Config, result *wizard.Result) {
	if result.AssetsDir != "" {
		cfg.Site.AssetsDir = result.AssetsDir
	}
	if result.AssetExt != "" {
		cfg.Site.AssetExt = result.AssetExt
	}
	if port, err := strconv.Atoi(result.Port); err == nil && port > 0 {
		cfg.Server.Port = port
	}
	if result.OpenBrowser != "" {
		cfg.Server.OpenBrowser = result.OpenBrowser == "true"
	}
}
