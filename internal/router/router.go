// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/troveworks/trove-backend/internal/config"
	"github.com/troveworks/trove-backend/internal/handlers"
	"github.com/troveworks/trove-backend/internal/middleware"
	"github.com/troveworks/trove-backend/internal/scraper"
	"github.com/troveworks/trove-backend/internal/services"
	"github.com/troveworks/trove-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage service")
	}
	assetService := services.NewAssetService(storageService, cfg.Scraper.ImageTimeout)

	extractor := scraper.NewExtractor(scraper.ExtractorConfig{
		UserAgent:    cfg.Scraper.UserAgent,
		FetchTimeout: cfg.Scraper.FetchTimeout,
	})

	submissionRepo := services.NewSubmissionRepository(db)
	catalogService := services.NewCatalogService(db)
	ingestService := services.NewIngestService(extractor, assetService, submissionRepo, cfg.Scraper.SourceDomain)
	reviewService := services.NewReviewService(submissionRepo, catalogService)
	blogService := services.NewBlogService(db)
	authService := services.NewAuthService(db, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	scrapeHandler := handlers.NewScrapeHandler(ingestService, cfg.Scraper.SourceDomain)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	gadgetHandler := handlers.NewGadgetHandler(catalogService)
	blogHandler := handlers.NewBlogHandler(blogService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Scrape intake
		scrape := v1.Group("/scrape")
		scrape.Use(middleware.AuthRequired(), middleware.ScrapeRateLimit())
		{
			scrape.POST("", scrapeHandler.Scrape)
		}

		// Review queue, admin only
		review := v1.Group("/review")
		review.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			review.GET("", reviewHandler.GetQueue)
			review.GET("/orphans", reviewHandler.GetOrphans)
			review.PUT("/:id/approve", reviewHandler.Approve)
			review.DELETE("/:id", reviewHandler.Delete)
		}

		// Public catalog routes
		gadgets := v1.Group("/gadgets")
		{
			gadgets.GET("", gadgetHandler.GetGadgets)
			gadgets.GET("/:id", gadgetHandler.GetGadget)
			gadgets.GET("/:id/related", gadgetHandler.GetRelatedGadgets)

			// Catalog writes are admin only
			adminOnly := []gin.HandlerFunc{middleware.AuthRequired(), middleware.AdminRequired()}
			gadgets.POST("", append(adminOnly, gadgetHandler.CreateGadget)...)
			gadgets.PUT("/:id", append(adminOnly, gadgetHandler.UpdateGadget)...)
			gadgets.DELETE("/:id", append(adminOnly, gadgetHandler.DeleteGadget)...)
		}

		// Editorial posts
		blog := v1.Group("/blog")
		{
			blog.GET("", blogHandler.GetPosts)
			blog.GET("/:id", blogHandler.GetPost)

			// Writes are admin only
			adminOnly := []gin.HandlerFunc{middleware.AuthRequired(), middleware.AdminRequired()}
			blog.POST("", append(adminOnly, blogHandler.CreatePost)...)
			blog.PUT("/:id", append(adminOnly, blogHandler.UpdatePost)...)
			blog.DELETE("/:id", append(adminOnly, blogHandler.DeletePost)...)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/users", authHandler.GetUsers)
			admin.PUT("/users/:id/role", authHandler.UpdateUserRole)
			admin.DELETE("/users/:id", authHandler.DeleteUser)
		}
	}

	return r
}
