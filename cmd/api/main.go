package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/expenso/expense-api/internal/config"
	"github.com/expenso/expense-api/internal/handler"
	"github.com/expenso/expense-api/internal/logger"
	"github.com/expenso/expense-api/internal/middleware"
	"github.com/expenso/expense-api/internal/repository"
	"github.com/expenso/expense-api/internal/router"
	"github.com/expenso/expense-api/internal/server"
	"github.com/expenso/expense-api/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrapLogger().Fatal().Err(err).Msg("failed to load config")
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		bootstrapLogger().Fatal().Err(err).Msg("failed to initialize logger")
	}

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewService(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(s, handlers, middlewares)
	s.SetupHTTPServer(e)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Block until an interrupt or termination signal arrives, then
	// drain inflight requests before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
}

// bootstrapLogger is used before the configured logger exists.
func bootstrapLogger() *zerolog.Logger {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &l
}
