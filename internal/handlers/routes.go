package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"widgets-api/internal/metrics"
	"widgets-api/internal/middleware"
)

// Netlify function paths kept for clients that still call them directly
const (
	NetlifyStandingsPath  = "/.netlify/functions/la-liga-standings"
	NetlifyNowPlayingPath = "/.netlify/functions/spotify-now-playing"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	StandingsHandler  *StandingsHandler
	NowPlayingHandler *NowPlayingHandler
	Metrics           *metrics.Manager
}

// MiddlewareConfig holds configuration for global middleware
type MiddlewareConfig struct {
	Metrics           *metrics.Manager
	RequestsPerSecond float64
	Burst             int
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "widgets-api",
			"version": "1.0.0",
		})
	})

	router.GET("/metrics", gin.WrapH(config.Metrics.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/standings", config.StandingsHandler.GetStandings)
		v1.GET("/now-playing", config.NowPlayingHandler.GetNowPlaying)
	}

	router.GET(NetlifyStandingsPath, config.StandingsHandler.GetStandings)
	router.GET(NetlifyNowPlayingPath, config.NowPlayingHandler.GetNowPlaying)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *MiddlewareConfig) {
	if config == nil {
		config = &MiddlewareConfig{}
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Rate limiting is skipped when RequestsPerSecond is zero
	if config.RequestsPerSecond > 0 {
		router.Use(middleware.RateLimiter(config.RequestsPerSecond, config.Burst))
	}

	router.Use(middleware.StructuredLogger())
	router.Use(middleware.Metrics(config.Metrics))
}
