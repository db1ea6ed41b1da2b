// Package main is the entry point for the bogenliga API server.
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"bogenliga/internal/config"
	"bogenliga/internal/domain/auth"
	v1 "bogenliga/internal/infrastructure/http/v1"
	"bogenliga/internal/infrastructure/http/v1/middleware"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/catalog_repo"
	"bogenliga/pkg/logger"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	logger.SetDefault(log)

	ctx := logger.WithLogger(context.Background(), log)
	log.Infow("starting bogenliga server", "version", version, "env", cfg.AppEnv)

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.PoolConfigFrom(cfg))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalw("failed to apply migrations", "error", err)
		}
	}

	if cfg.VerifySchema {
		if err := verifySchema(ctx, pool); err != nil {
			log.Fatalw("column maps do not match the database", "error", err)
		}
		log.Info("schema verified")
	}

	// --- Services ---
	txManager := postgres.NewTxManager(pool)
	changeLog, err := postgres.NewChangeLog(txManager, cfg.ChangeLogCompressThreshold)
	if err != nil {
		log.Fatalw("failed to initialize change log", "error", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:         cfg.JWTSecret,
		Issuer:         cfg.JWTIssuer,
		AccessTokenTTL: cfg.JWTTTL,
	})
	services := v1.NewServices(txManager, changeLog, jwtService, auth.DefaultServiceConfig())

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Services:     services,
		JWTValidator: jwtService,
		Health:       pool,
		Metrics:      middleware.NewMetrics(registry),
		Logger:       log,
		Version:      version,
		Development:  cfg.Development(),
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	go reportPoolStats(ctx, pool)

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func verifySchema(ctx context.Context, pool *postgres.Pool) error {
	verifier, db := postgres.NewPoolSchemaVerifier(pool)
	defer db.Close()
	return verifier.Verify(ctx, catalog_repo.Tables())
}

func reportPoolStats(ctx context.Context, pool *postgres.Pool) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		postgres.LogPoolStats(ctx, pool)
	}
}
