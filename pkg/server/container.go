package server

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"widgets-api/internal/adapters/footballdata"
	"widgets-api/internal/adapters/spotify"
	"widgets-api/internal/cache"
	"widgets-api/internal/config"
	"widgets-api/internal/handlers"
	"widgets-api/internal/metrics"
	"widgets-api/internal/models"
	"widgets-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Metrics           *metrics.Manager
	StandingsCache    *cache.StandingsCache
	StandingsService  services.StandingsService
	NowPlayingService services.NowPlayingService
	StandingsHandler  *handlers.StandingsHandler
	NowPlayingHandler *handlers.NowPlayingHandler

	// Internal dependencies
	httpClient *http.Client
	services   *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	metricsManager := metrics.NewManager()
	httpClient := &http.Client{Timeout: cfg.HTTPClient.Timeout}

	providers := &services.Providers{
		Standings: footballdata.NewClient(footballdata.ClientConfig{
			BaseURL:       cfg.FootballData.BaseURL,
			CompetitionID: cfg.FootballData.CompetitionID,
			HTTPClient:    httpClient,
			Metrics:       metricsManager,
		}),
		Playback: spotify.NewClient(spotify.ClientConfig{
			TokenURL:   cfg.Spotify.TokenURL,
			APIBaseURL: cfg.Spotify.APIBaseURL,
			HTTPClient: httpClient,
			Metrics:    metricsManager,
		}),
	}

	// One cache per process, shared by every invocation it serves
	standingsCache := cache.NewStandingsCache(cfg.FootballData.CacheTTL, nil)

	serviceConfig := &services.ServiceConfig{
		FootballDataToken: cfg.FootballData.Token,
		SpotifyCredentials: models.SpotifyCredentials{
			ClientID:     cfg.Spotify.ClientID,
			ClientSecret: cfg.Spotify.ClientSecret,
			RefreshToken: cfg.Spotify.RefreshToken,
		},
		StandingsCache: standingsCache,
		Metrics:        metricsManager,
	}

	serviceContainer, err := services.NewServiceContainer(providers, serviceConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create service container")
	}
	if err := serviceContainer.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid service container")
	}

	return &Container{
		Config:            cfg,
		Metrics:           metricsManager,
		StandingsCache:    standingsCache,
		StandingsService:  serviceContainer.StandingsService,
		NowPlayingService: serviceContainer.NowPlayingService,
		StandingsHandler:  handlers.NewStandingsHandler(serviceContainer.StandingsService),
		NowPlayingHandler: handlers.NewNowPlayingHandler(serviceContainer.NowPlayingService),
		httpClient:        httpClient,
		services:          serviceContainer,
	}, nil
}

// NewRouter builds the gin engine for the local HTTP server
func (c *Container) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	handlers.SetupMiddleware(router, &handlers.MiddlewareConfig{
		Metrics:           c.Metrics,
		RequestsPerSecond: c.Config.RateLimit.RequestsPerSecond,
		Burst:             c.Config.RateLimit.Burst,
	})
	handlers.SetupRoutes(router, &handlers.RouterConfig{
		StandingsHandler:  c.StandingsHandler,
		NowPlayingHandler: c.NowPlayingHandler,
		Metrics:           c.Metrics,
	})

	return router
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}
