package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seima-scanner/seima-cli/internal/logger"
	"github.com/seima-scanner/seima-cli/internal/server"
)

// ServeBrowser opens the site in a browser when the server starts.
// Tests replace it with a mock.
var ServeBrowser server.BrowserOpener = server.NewBrowser()

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site locally for development",
	Long: `Serve the site root over HTTP for local development.

Responses carry permissive CORS headers and JavaScript files are served
with the application/javascript content type, matching what the published
site expects. By default the site opens in your browser.

Examples:
  seima serve                  Serve the site next to the binary on port 8080
  seima serve --port 3000      Serve on port 3000
  seima serve --no-open-browser  Do not open a browser`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("root", "", "Site root directory (default: directory of the seima binary)")
	serveCmd.Flags().Int("port", 0, "Port to listen on (default: from configuration, 8080)")
	serveCmd.Flags().Bool("no-open-browser", false, "Do not open the site in a browser")
}

func runServe(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	root, err := resolveSiteRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadSiteConfig(root)
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if flagPort := getIntFlag(cmd, "port"); flagPort != 0 {
		port = flagPort
	}

	openBrowser := cfg.Server.OpenBrowser
	if getBoolFlag(cmd, "no-open-browser") {
		openBrowser = false
	}

	srv := server.New(root, port, logger.Log)

	_, _ = fmt.Fprintln(out, renderCard("Seima development server", renderKeyValueLines([]kvPair{
		{"Address", srv.URL()},
		{"Root", srv.Root()},
	})))
	_, _ = fmt.Fprintln(out, cliMuted.Render("Press Ctrl+C to stop the server"))

	if openBrowser {
		if openErr := ServeBrowser.Open(srv.URL()); openErr != nil {
			_, _ = fmt.Fprintf(out, "%s Could not open browser: %v\n", symWarning(), openErr)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	go func() {
		<-quit
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		_, _ = fmt.Fprintf(out, "%s Server error: %v\n", symError(), err)
		return fmt.Errorf("development server: %w", err)
	}

	_, _ = fmt.Fprintf(out, "\n%s Server stopped\n", symSuccess())
	return nil
}
