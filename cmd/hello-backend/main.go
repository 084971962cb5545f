package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/hello-backend/internal/config"
	"github.com/deppfellow/hello-backend/internal/handler"
	"github.com/deppfellow/hello-backend/internal/logger"
	"github.com/deppfellow/hello-backend/internal/router"
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/deppfellow/hello-backend/internal/service"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		bootLogger := logger.NewLogger(cfg.Observability)
		bootLogger.Fatal().Err(err).Msg("failed to start New Relic")
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
