package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seima-scanner/seima-cli/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "seima",
	Short: "Seima Scanner: toolkit for the PDF publishing site",
	Long: `seima is the command-line toolkit for the Seima Scanner static site.

It regenerates the assets-list.json manifest the site viewer loads,
serves the site locally with development-friendly CORS headers, and
scaffolds the site configuration.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("seima %s\n", version.GetVersion()))
}
