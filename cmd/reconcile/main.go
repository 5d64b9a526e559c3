package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/adapter/repository/postgres"
	"github.com/boardline/boardline-backend/internal/infrastructure/config"
	"github.com/boardline/boardline-backend/internal/infrastructure/database"
	"github.com/boardline/boardline-backend/internal/infrastructure/observability"
	"github.com/boardline/boardline-backend/internal/infrastructure/storage"
	"github.com/boardline/boardline-backend/internal/usecase/reconcile"
)

// Offline sweep that drops variant rows whose backing object vanished
// from storage. Intended for cron, never the request path.
func main() {
	pageSize := flag.Int("page-size", 200, "variant rows fetched per page")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	s3Storage, err := storage.NewS3Storage(cfg.S3, cfg.Media.SignedURLTTL)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}

	variantRepo := postgres.NewImageVariantRepo(pool)
	svc := reconcile.NewService(variantRepo, s3Storage, *pageSize, logger)

	report, err := svc.Run(ctx)
	if err != nil {
		logger.Fatal("reconciliation failed",
			zap.Int("scanned", report.Scanned),
			zap.Int("missing", report.Missing),
			zap.Int("removed", report.Removed),
			zap.Error(err),
		)
	}

	logger.Info("reconciliation complete",
		zap.Int("scanned", report.Scanned),
		zap.Int("missing", report.Missing),
		zap.Int("removed", report.Removed),
	)
}
