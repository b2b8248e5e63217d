package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vitrineimob/vitrine-api/internal/config"
	"github.com/vitrineimob/vitrine-api/internal/handlers"
	"github.com/vitrineimob/vitrine-api/internal/logging"
	"github.com/vitrineimob/vitrine-api/internal/middleware"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"github.com/vitrineimob/vitrine-api/internal/services"
	"go.uber.org/zap"

	_ "github.com/vitrineimob/vitrine-api/docs"
)

// @title           Vitrine Imob API
// @version         1.0
// @description     API for agent property sites: listings, search, leads, blog, reviews, billing and portal XML export feeds. Each agent account owns its own data; public routes are scoped by the agent's site slug.

// @contact.name   API Support
// @contact.email  suporte@vitrineimob.com.br

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name public
// @tag.description Public site routes scoped by agent slug

// @tag.name dashboard
// @tag.description Authenticated agent dashboard routes

// @tag.name feeds
// @tag.description Portal XML export feeds

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Wire service instances
	services.Init()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Health check endpoint
		v1.GET("/health", handlers.HealthCheck)

		// Portal export feeds, consumed by the portals' crawlers
		v1.GET("/feeds/:portal", handlers.GetFeed)

		// Public site routes, scoped by agent slug
		v1.POST("/agents", handlers.RegisterAgent)
		v1.GET("/agents/:slug", handlers.GetAgentProfile)
		v1.GET("/agents/:slug/properties", handlers.SearchProperties)
		v1.GET("/agents/:slug/properties/:id", handlers.GetPublicProperty)
		v1.POST("/agents/:slug/leads", handlers.SubmitLead)
		v1.GET("/agents/:slug/posts", handlers.ListPublicPosts)
		v1.GET("/agents/:slug/posts/:postSlug", handlers.GetPublicPost)
		v1.GET("/agents/:slug/reviews", handlers.ListPublicReviews)
		v1.POST("/agents/:slug/reviews", handlers.SubmitReview)

		// Authenticated dashboard routes
		dashboard := v1.Group("/dashboard", middleware.AuthMiddleware())
		{
			dashboard.GET("/profile", handlers.GetMyProfile)
			dashboard.PUT("/profile", handlers.UpdateMyProfile)

			dashboard.POST("/properties", handlers.CreateProperty)
			dashboard.GET("/properties", handlers.ListProperties)
			dashboard.GET("/properties/:id", handlers.GetProperty)
			dashboard.PUT("/properties/:id", handlers.UpdateProperty)
			dashboard.PATCH("/properties/:id/status", handlers.UpdatePropertyStatus)
			dashboard.POST("/properties/import", handlers.ImportProperties)
			dashboard.POST("/properties/:id/describe", handlers.SuggestPropertyDescription)

			dashboard.GET("/leads", handlers.ListLeads)
			dashboard.PATCH("/leads/:id/status", handlers.UpdateLeadStatus)
			dashboard.DELETE("/leads/:id", handlers.DeleteLead)

			dashboard.POST("/posts", handlers.CreateBlogPost)
			dashboard.GET("/posts", handlers.ListBlogPosts)
			dashboard.PUT("/posts/:id", handlers.UpdateBlogPost)
			dashboard.DELETE("/posts/:id", handlers.DeleteBlogPost)

			dashboard.GET("/reviews", handlers.ListReviews)
			dashboard.POST("/reviews/:id/approve", handlers.ApproveReview)
			dashboard.DELETE("/reviews/:id", handlers.DeleteReview)

			dashboard.GET("/subscription", handlers.GetSubscription)
			dashboard.PUT("/subscription", middleware.RequireAdmin(), handlers.UpdateSubscription)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
