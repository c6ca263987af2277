// Package main is the entry point for the offer pipeline service.
//
//	@title						Flight Offer Pipeline API
//	@version					1.0.0
//	@description				A stateless processing service for flight-offer result sets: filtering, sorting, pagination and price analytics over offers from the upstream search API.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-offers/offer-pipeline-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-offers/offer-pipeline-service/docs"

	// Application layers
	offerhttp "github.com/flight-offers/offer-pipeline-service/internal/adapter/http"
	custommw "github.com/flight-offers/offer-pipeline-service/internal/adapter/http/middleware"
	"github.com/flight-offers/offer-pipeline-service/internal/cache"
	"github.com/flight-offers/offer-pipeline-service/internal/config"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/logger"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/metrics"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/ratelimit"
	"github.com/flight-offers/offer-pipeline-service/internal/pipeline"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLogger := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "offer-pipeline",
	})
	logger.SetGlobal(appLogger)

	appLogger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Prometheus collectors
	m := metrics.New(prometheus.NewRegistry())

	// Setup middleware
	setupMiddleware(e, cfg, appLogger, m)

	// Setup routes
	cleanup := setupRoutes(e, cfg, appLogger, m)
	defer cleanup()

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLogger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLogger)
}

// setupMiddleware configures the Echo middleware stack.
func setupMiddleware(e *echo.Echo, cfg *config.Config, appLogger *logger.Logger, m *metrics.Metrics) {
	custommw.Setup(e, appLogger.Logger)
	e.Use(custommw.HTTPMetrics(m))

	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewClientLimiter(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.BurstSize,
		})
		e.Use(custommw.RateLimit(limiter, m))
	}
}

// setupRoutes wires the processor stack and registers the HTTP routes.
// The returned function releases held resources (the cache connection).
func setupRoutes(e *echo.Echo, cfg *config.Config, appLogger *logger.Logger, m *metrics.Metrics) func() {
	// Core processor with config
	processor := pipeline.New(&pipeline.Config{
		DefaultPageSize:  cfg.Pipeline.DefaultPageSize,
		MaxPageSize:      cfg.Pipeline.MaxPageSize,
		StrictValidation: cfg.Pipeline.StrictValidation,
	})

	// Optional result cache
	resultCache := buildCache(cfg, appLogger)
	processor = cache.Wrap(processor, resultCache, m, appLogger)

	// Prometheus instrumentation
	processor = metrics.Instrument(processor, m)

	// Register the API
	handler := offerhttp.NewOfferHandler(processor)
	offerhttp.RegisterRoutes(e, handler)

	// Metrics scrape endpoint
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return func() {
		if err := resultCache.Close(); err != nil {
			appLogger.Warn().Err(err).Msg("Failed to close result cache")
		}
	}
}

// buildCache connects to Redis when enabled, falling back to the no-op cache
// if the connection cannot be established.
func buildCache(cfg *config.Config, appLogger *logger.Logger) cache.Cache {
	if !cfg.Redis.Enabled {
		return cache.NewNoOpCache()
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		appLogger.Error().Err(err).Str("addr", cfg.Redis.Addr).
			Msg("Redis unavailable, running without result cache")
		return cache.NewNoOpCache()
	}

	appLogger.Info().Str("addr", cfg.Redis.Addr).Msg("Result cache connected")
	return redisCache
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLogger *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLogger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("Error during server shutdown")
	}

	appLogger.Info().Msg("Server stopped")
}
