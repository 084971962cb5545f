// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/hello-backend/internal/config"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/hello-backend/internal/logger"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService holds the New Relic application; its application is nil
	// when New Relic is disabled.
	LoggerService *loggerPkg.LoggerService

	httpServer *http.Server
}

// New constructs a Server. It fails only when cfg is nil; a nil logger
// becomes a no-op logger.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server config is required")
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    s.Config.Server.Address(),
		Handler: handler,

		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
// It requires SetupHTTPServer to be called first. A clean Shutdown
// returns nil rather than http.ErrServerClosed.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("addr", s.httpServer.Addr).
		Str("env", s.Config.Primary.Env).
		Strs("cors_allowed_origins", s.Config.Server.CORSAllowedOrigins).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests until
// ctx expires, then flushes New Relic.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	s.LoggerService.Shutdown()

	return nil
}
