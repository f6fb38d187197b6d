package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"degen/internal/config"
	"degen/internal/handlers"
	"degen/internal/logger"
	"degen/internal/metrics"
	"degen/internal/middleware"
	"degen/internal/storage"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	gin.SetMode(cfg.GinMode)

	if err := runMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	store, err := storage.NewPostgresStorage(cfg.DatabaseURL)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer store.Close()

	metrics.RegisterDBMetrics(store.DB(), "degen")

	h := handlers.New(store)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", h.Health)
	r.GET("/docs", h.Docs)
	r.GET("/openapi.json", h.GetOpenAPISpecJSON)
	r.GET("/openapi.yaml", h.GetOpenAPISpecYAML)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json")))

	r.POST("/wallets", h.AddWallet)
	r.GET("/wallets", h.ListWallets)
	r.GET("/wallets/:id", h.GetWallet)

	// Metrics are served on a separate listener so they stay off the
	// public port
	go func() {
		metricsAddr := cfg.MetricsBindAddr + ":" + cfg.MetricsPort
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		logger.Logger.Info().Str("addr", metricsAddr).Msg("Metrics listener started")
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			logger.Logger.Error().Err(err).Msg("Metrics listener failed")
		}
	}()

	logger.Logger.Info().Str("port", cfg.Port).Msg("Degen API listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Server failed")
	}
}

// runMigrations applies any pending schema migrations
func runMigrations(migrationsPath, databaseURL string) error {
	m, err := migrate.New(migrationsPath, databaseURL)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
