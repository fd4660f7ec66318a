package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "edinburgh-events/docs"
	"edinburgh-events/internal/cache"
	"edinburgh-events/internal/config"
	"edinburgh-events/internal/database"
	"edinburgh-events/internal/handlers"
	"edinburgh-events/internal/middleware"
	"edinburgh-events/internal/providers/eventbrite"
	"edinburgh-events/internal/providers/ticketmaster"
	"edinburgh-events/internal/repositories"
	"edinburgh-events/internal/services"
)

// @title        Edinburgh Events API
// @version      1.0
// @description  Aggregated event discovery, cart and bookmarks for the Edinburgh storefront
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Storage.Path})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		logger.Fatalf("Failed to prepare storage schema: %v", err)
	}

	// Repositories over the local key-value store
	kv := repositories.NewKVStore(db.DB)
	cartRepo := repositories.NewCartRepository(kv)
	bookmarkRepo := repositories.NewBookmarkRepository(kv)

	// Provider adapters and services
	tm := ticketmaster.NewClient(cfg.Ticketmaster, logger)
	eb := eventbrite.NewClient(cfg.Eventbrite, logger)
	aggregator := services.NewAggregatorService(tm, eb, logger)
	cartService := services.NewCartService(cartRepo, logger)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, logger)

	// Optional Redis listing cache; nil client means uncached
	redisClient := cache.NewClient()
	if redisClient == nil && cfg.Cache.Enabled {
		logger.Warn("Redis unavailable; serving listings uncached")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(logger))
	router.Use(cors.Default())

	eventsHandler := handlers.NewEventsHandler(aggregator, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	bookmarksHandler := handlers.NewBookmarksHandler(bookmarkService, logger)

	router.GET("/health", handlers.Health)

	listingCache := middleware.ResponseCache(redisClient, cfg.Cache, logger)
	api := router.Group("/api")
	{
		api.GET("/events", listingCache, eventsHandler.List)
		api.GET("/events/grouped", listingCache, eventsHandler.Grouped)
		api.GET("/events/:source/:id", eventsHandler.GetBySourceAndID)

		api.GET("/cart", cartHandler.Get)
		api.POST("/cart", cartHandler.Add)
		api.DELETE("/cart/:key", cartHandler.Remove)
		api.DELETE("/cart", cartHandler.Clear)

		api.GET("/bookmarks", bookmarksHandler.List)
		api.POST("/bookmarks/toggle", bookmarksHandler.Toggle)
		api.DELETE("/bookmarks/:key", bookmarksHandler.Remove)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("addr", addr).Info("starting server")
	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
