package infra

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// HTTPServer wraps http.Server with the donation service's timeout policy
// and graceful shutdown.
type HTTPServer struct {
	server *http.Server
	logger zerolog.Logger
}

// NewHTTPServer creates the configured HTTP server for the donation routes.
func NewHTTPServer(cfg *Config, logger zerolog.Logger, handler http.Handler) *HTTPServer {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: cfg.HTTPReadHeaderTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	return &HTTPServer{server: srv, logger: logger}
}

// Start logs the listen address and runs the server in the current goroutine.
func (s *HTTPServer) Start() error {
	if s.server == nil {
		return nil
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("http server listening")
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
