// Package api exposes the remediation scanner over HTTP. The batch
// endpoint accepts a list of ABAP units and returns each unit annotated
// with its remediation suggestions.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mmscan/internal/config"
	"mmscan/internal/logging"
	"mmscan/internal/scan"
)

// Server represents the HTTP API server
type Server struct {
	router  *http.ServeMux
	server  *http.Server
	addr    string
	logger  *logging.Logger
	scanner *scan.Scanner
	cfg     *config.Config
}

// NewServer creates a new HTTP server instance
func NewServer(addr string, scanner *scan.Scanner, cfg *config.Config, logger *logging.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := &Server{
		addr:    addr,
		logger:  logger,
		scanner: scanner,
		cfg:     cfg,
		router:  http.NewServeMux(),
	}

	s.registerRoutes()

	handler := s.applyMiddleware(s.router)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": s.addr,
	})

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", nil)

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Server shut down successfully", nil)
	return nil
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps the handler with middleware in the correct order
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	// Apply middleware in reverse order (last one wraps first)
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = AuthMiddleware(s.cfg.Server.Auth)(handler)
	handler = GzipMiddleware()(handler)
	handler = RequestIDMiddleware()(handler)
	handler = CORSMiddleware()(handler)
	return handler
}
