package api

import (
	"context"
	"net/http"
	"time"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/clock"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/metrics"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/service/leads"
)

// Server represents the API server
type Server struct {
	config  config.ServerConfig
	handler http.Handler
	server  *http.Server
}

// NewServer creates a new API server
func NewServer(cfg config.ServerConfig, svc *leads.Service, clk clock.Clock) *Server {
	return &Server{
		config:  cfg,
		handler: NewRouter(NewHandlers(svc, clk, metrics.New())),
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.handler
}
