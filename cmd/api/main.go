package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/adapter/handler"
	"github.com/boardline/boardline-backend/internal/adapter/repository/postgres"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/infrastructure/auth"
	"github.com/boardline/boardline-backend/internal/infrastructure/cache"
	"github.com/boardline/boardline-backend/internal/infrastructure/config"
	"github.com/boardline/boardline-backend/internal/infrastructure/database"
	"github.com/boardline/boardline-backend/internal/infrastructure/middleware"
	"github.com/boardline/boardline-backend/internal/infrastructure/observability"
	"github.com/boardline/boardline-backend/internal/infrastructure/server"
	"github.com/boardline/boardline-backend/internal/infrastructure/storage"
	authUC "github.com/boardline/boardline-backend/internal/usecase/auth"
	"github.com/boardline/boardline-backend/internal/usecase/catalog"
	"github.com/boardline/boardline-backend/internal/usecase/inquiry"
	"github.com/boardline/boardline-backend/internal/usecase/media"
	"github.com/boardline/boardline-backend/internal/usecase/promotion"
)

func main() {
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

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Repositories
	productRepo := postgres.NewProductRepo(pool)
	variantRepo := postgres.NewImageVariantRepo(pool)
	collectionRepo := postgres.NewCollectionRepo(pool)
	promotionRepo := postgres.NewPromotionRepo(pool)
	inquiryRepo := postgres.NewInquiryRepo(pool)
	adminRepo := postgres.NewAdminUserRepo(pool)
	refreshTokenRepo := postgres.NewRefreshTokenRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)

	s3Storage, err := storage.NewS3Storage(cfg.S3, cfg.Media.SignedURLTTL)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	deriver := storage.NewVariantDeriver(logger)

	// Use cases
	authSvc := authUC.NewService(adminRepo, refreshTokenRepo, jwtSvc, passwordHasher, cfg.JWT.RefreshTokenTTL)
	catalogSvc := catalog.NewService(productRepo, collectionRepo, redisClient, cfg.Redis.CacheTTL, logger)
	mediaSvc := media.NewService(variantRepo, productRepo, s3Storage, deriver, valueobject.DefaultVariantSpecs(), cfg.Media.Namespace, logger)
	promotionSvc := promotion.NewService(promotionRepo)
	inquirySvc := inquiry.NewService(inquiryRepo, productRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	productHandler := handler.NewProductHandler(catalogSvc)
	collectionHandler := handler.NewCollectionHandler(catalogSvc)
	mediaHandler := handler.NewMediaHandler(mediaSvc, cfg.Media.MaxUploadSize)
	promotionHandler := handler.NewPromotionHandler(promotionSvc)
	inquiryHandler := handler.NewInquiryHandler(inquirySvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:       authHandler,
		ProductHandler:    productHandler,
		CollectionHandler: collectionHandler,
		MediaHandler:      mediaHandler,
		PromotionHandler:  promotionHandler,
		InquiryHandler:    inquiryHandler,
		AuthMiddleware:    authMiddleware,
		RateLimiter:       rateLimiter,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		Logger:            logger,
		Environment:       cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
