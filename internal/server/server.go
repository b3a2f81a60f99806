// Package server hosts a Seima Scanner site directory over HTTP for
// local preview. Responses carry the CORS headers the published viewer
// relies on, and JavaScript assets are always served with the
// application/javascript content type.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves the files of a site root directory.
type Server struct {
	mux  *http.ServeMux
	http *http.Server
	root string
	port int
	log  *slog.Logger
}

// New creates a Server for the given site root directory listening on port.
// A nil logger is replaced with a no-op logger.
func New(root string, port int, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		mux:  http.NewServeMux(),
		root: root,
		port: port,
		log:  log,
	}
	s.setupRoutes()
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.mux.Handle("GET /", http.FileServer(http.Dir(s.root)))
}

// Root returns the directory the server serves files from.
func (s *Server) Root() string {
	return s.root
}

// URL returns the address a local browser should open.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

// ServeHTTP implements http.Handler. Every response carries permissive
// CORS headers so a site opened from another origin can fetch the
// manifest, and OPTIONS preflight requests are answered without a body.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	// Some browsers refuse module scripts served as text/plain, so the
	// content type for .js files is pinned before the file server can
	// guess one.
	if strings.HasSuffix(r.URL.Path, ".js") {
		h.Set("Content-Type", "application/javascript")
	}

	s.log.Debug("request", "method", r.Method, "path", r.URL.Path)
	s.mux.ServeHTTP(w, r)
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. On cancellation the server is drained gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("serving site", "addr", s.http.Addr, "root", s.root)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve %s: %w", s.http.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
