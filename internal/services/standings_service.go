package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"widgets-api/internal/cache"
	"widgets-api/internal/metrics"
	"widgets-api/internal/models"
)

// standingsService implements the StandingsService interface
type standingsService struct {
	provider StandingsProvider
	cache    *cache.StandingsCache
	creds    models.FootballCredentials
	metrics  *metrics.Manager
}

// NewStandingsService creates a new standings service instance
func NewStandingsService(provider StandingsProvider, standingsCache *cache.StandingsCache, token string, m *metrics.Manager) StandingsService {
	if standingsCache == nil {
		standingsCache = cache.NewStandingsCache(cache.DefaultStandingsTTL, nil)
	}
	return &standingsService{
		provider: provider,
		cache:    standingsCache,
		creds:    models.FootballCredentials{Token: token},
		metrics:  m,
	}
}

// GetStandings serves the cached table while it is fresh and otherwise
// performs one live fetch. Upstream failures never fall back to stale data.
func (s *standingsService) GetStandings(ctx context.Context, topParam string) (*models.StandingsPayload, error) {
	if err := s.creds.Validate(); err != nil {
		logrus.Error("Standings requested without FOOTBALL_DATA_TOKEN")
		return nil, NewConfigError(MissingFootballTokenMessage, err)
	}

	limit := models.ParseTop(topParam)

	if rows, ok := s.cache.Fresh(); ok {
		s.metrics.RecordCacheHit()
		logrus.WithFields(logrus.Fields{
			"limit":       limit,
			"cached_rows": len(rows),
		}).Debug("Serving standings from cache")
		return &models.StandingsPayload{
			Source:    models.SourceCache,
			Standings: models.TopRows(rows, limit),
		}, nil
	}

	s.metrics.RecordCacheMiss()

	resp, err := s.provider.FetchStandings(ctx, s.creds.Token)
	if err != nil {
		return nil, err
	}

	table := models.SimplifyTable(resp.FirstTable())
	s.cache.Set(table)

	logrus.WithFields(logrus.Fields{
		"limit": limit,
		"rows":  len(table),
	}).Info("Standings refreshed from upstream")

	return &models.StandingsPayload{
		Source:    models.SourceLive,
		Standings: models.TopRows(table, limit),
	}, nil
}
