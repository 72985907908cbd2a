package services

import (
	"fmt"

	"widgets-api/internal/cache"
	"widgets-api/internal/metrics"
	"widgets-api/internal/models"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	StandingsService  StandingsService
	NowPlayingService NowPlayingService
}

// Providers holds the upstream clients the services call
type Providers struct {
	Standings StandingsProvider
	Playback  PlaybackProvider
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	FootballDataToken  string
	SpotifyCredentials models.SpotifyCredentials
	StandingsCache     *cache.StandingsCache
	Metrics            *metrics.Manager
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(providers *Providers, config *ServiceConfig) (*ServiceContainer, error) {
	if providers == nil {
		return nil, fmt.Errorf("providers cannot be nil")
	}
	if providers.Standings == nil {
		return nil, fmt.Errorf("standings provider cannot be nil")
	}
	if providers.Playback == nil {
		return nil, fmt.Errorf("playback provider cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}

	return &ServiceContainer{
		StandingsService:  NewStandingsService(providers.Standings, config.StandingsCache, config.FootballDataToken, config.Metrics),
		NowPlayingService: NewNowPlayingService(providers.Playback, config.SpotifyCredentials),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.StandingsService == nil {
		return fmt.Errorf("standings service is nil")
	}
	if sc.NowPlayingService == nil {
		return fmt.Errorf("now-playing service is nil")
	}
	return nil
}
