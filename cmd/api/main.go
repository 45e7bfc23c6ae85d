// Command api runs the borders HTTP API.
//
// Startup order: load config, build the logger (with optional New
// Relic forwarding), open the database pool, ensure the schema exists,
// wire repositories -> services -> handlers -> middlewares -> router,
// then serve until SIGINT/SIGTERM triggers a graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"borders-api/internal/config"
	"borders-api/internal/handler"
	"borders-api/internal/logger"
	"borders-api/internal/middleware"
	"borders-api/internal/repository"
	"borders-api/internal/router"
	"borders-api/internal/server"
	"borders-api/internal/service"
)

// shutdownTimeout bounds how long inflight requests may drain.
const shutdownTimeout = 10 * time.Second

func main() {
	// The full logger needs config; bootstrap failures log through a
	// bare stderr writer.
	fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		fallback.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	log := logger.New(cfg, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	if err := srv.DB.EnsureSchema(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}
	cancel()

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	r := router.New(handlers, middlewares)
	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
