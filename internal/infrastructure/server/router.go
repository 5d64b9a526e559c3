package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/adapter/handler"
	"github.com/boardline/boardline-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine            *gin.Engine
	authHandler       *handler.AuthHandler
	productHandler    *handler.ProductHandler
	collectionHandler *handler.CollectionHandler
	mediaHandler      *handler.MediaHandler
	promotionHandler  *handler.PromotionHandler
	inquiryHandler    *handler.InquiryHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
	allowedOrigins    []string
	logger            *zap.Logger
}

type RouterConfig struct {
	AuthHandler       *handler.AuthHandler
	ProductHandler    *handler.ProductHandler
	CollectionHandler *handler.CollectionHandler
	MediaHandler      *handler.MediaHandler
	PromotionHandler  *handler.PromotionHandler
	InquiryHandler    *handler.InquiryHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
	AllowedOrigins    []string
	Logger            *zap.Logger
	Environment       string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:            engine,
		authHandler:       cfg.AuthHandler,
		productHandler:    cfg.ProductHandler,
		collectionHandler: cfg.CollectionHandler,
		mediaHandler:      cfg.MediaHandler,
		promotionHandler:  cfg.PromotionHandler,
		inquiryHandler:    cfg.InquiryHandler,
		authMiddleware:    cfg.AuthMiddleware,
		rateLimiter:       cfg.RateLimiter,
		allowedOrigins:    cfg.AllowedOrigins,
		logger:            cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.Refresh)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		}

		// Public storefront surface.
		api.GET("/products", r.productHandler.List)
		api.GET("/products/:slug", r.productHandler.GetBySlug)
		api.GET("/collections", r.collectionHandler.List)
		api.GET("/collections/:slug", r.collectionHandler.GetBySlug)
		api.GET("/collections/:slug/products", r.collectionHandler.Products)
		api.GET("/promotions/active", r.promotionHandler.ListActive)
		api.POST("/inquiries", r.inquiryHandler.Submit)

		admin := api.Group("/admin")
		admin.Use(r.authMiddleware.RequireAuth())
		{
			products := admin.Group("/products")
			{
				products.POST("", r.productHandler.Create)
				products.GET("", adminVisibility, r.productHandler.List)
				products.GET("/:id", r.productHandler.Get)
				products.PUT("/:id", r.productHandler.Update)
				products.DELETE("/:id", r.productHandler.Delete)

				products.POST("/:id/images", r.mediaHandler.Upload)
				products.GET("/:id/images", r.mediaHandler.List)
				products.PUT("/:id/images/order", r.mediaHandler.Reorder)
			}

			admin.DELETE("/images/:bundle_id", r.mediaHandler.Delete)

			collections := admin.Group("/collections")
			{
				collections.POST("", r.collectionHandler.Create)
				collections.GET("", adminVisibility, r.collectionHandler.List)
				collections.PUT("/:id", r.collectionHandler.Update)
				collections.DELETE("/:id", r.collectionHandler.Delete)
				collections.POST("/:id/products", r.collectionHandler.AddProduct)
				collections.DELETE("/:id/products/:product_id", r.collectionHandler.RemoveProduct)
			}

			promotions := admin.Group("/promotions")
			{
				promotions.POST("", r.promotionHandler.Create)
				promotions.GET("", r.promotionHandler.List)
				promotions.PUT("/:id", r.promotionHandler.Update)
				promotions.DELETE("/:id", r.promotionHandler.Delete)
			}

			inquiries := admin.Group("/inquiries")
			{
				inquiries.GET("", r.inquiryHandler.List)
				inquiries.GET("/:id", r.inquiryHandler.Get)
				inquiries.PUT("/:id/status", r.inquiryHandler.UpdateStatus)
			}
		}
	}
}

// adminVisibility widens list endpoints to include inactive products and
// hidden collections for back-office screens.
func adminVisibility(c *gin.Context) {
	c.Set("include_inactive", true)
	c.Set("include_hidden", true)
	c.Next()
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
