package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"humspot-backend/internal/config"
	"humspot-backend/internal/database"
	"humspot-backend/internal/handlers"
	"humspot-backend/internal/logger"
	"humspot-backend/internal/query"
	"humspot-backend/internal/services"
)

// configPath returns the config file location, overridable with HUMSPOT_CONFIG
func configPath() string {
	if p := os.Getenv("HUMSPOT_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

func Run() {
	// Load configuration
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	// Connect to database; the pool lives for the whole process
	ctx := context.Background()
	pool, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	exec := query.NewExecutor(pool, query.WithAcquireTimeout(cfg.Database.AcquireTimeout))

	s3Client, err := services.NewS3Client(ctx, cfg.AWS)
	if err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("Failed to create S3 client")
	}
	uploadService := services.NewUploadService(s3Client, cfg.AWS)

	router := handlers.NewRouter(cfg.CORS, exec, uploadService)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	case err := <-serverErr:
		log.Error().Err(err).Msg("Server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Drain in-flight requests before the pool goes away
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	pool.Close()

	log.Info().Msg("Server exited")
}
