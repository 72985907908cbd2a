package footballdata

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"widgets-api/internal/adapters/upstream"
	"widgets-api/internal/metrics"
	"widgets-api/internal/models"
)

const (
	providerName         = "footballdata"
	defaultBaseURL       = "https://api.football-data.org"
	defaultCompetitionID = "2014" // La Liga
	opStandings          = "standings"
)

// ClientConfig configures the football-data.org client
type ClientConfig struct {
	BaseURL       string
	CompetitionID string
	HTTPClient    *http.Client
	Metrics       *metrics.Manager
}

// Client reads competition standings from football-data.org v4
type Client struct {
	baseURL       string
	competitionID string
	upstream      *upstream.Client
}

// NewClient creates a football-data.org client
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	competitionID := strings.TrimSpace(cfg.CompetitionID)
	if competitionID == "" {
		competitionID = defaultCompetitionID
	}

	return &Client{
		baseURL:       baseURL,
		competitionID: competitionID,
		upstream: upstream.NewClient(upstream.ClientConfig{
			Provider:   providerName,
			HTTPClient: cfg.HTTPClient,
			Metrics:    cfg.Metrics,
		}),
	}
}

// StandingsURL returns the endpoint for the configured competition
func (c *Client) StandingsURL() string {
	return fmt.Sprintf("%s/v4/competitions/%s/standings", c.baseURL, c.competitionID)
}

// FetchStandings performs one GET of the competition standings.
// A non-2xx reply is returned as *upstream.UpstreamError.
func (c *Client) FetchStandings(ctx context.Context, token string) (*models.StandingsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.StandingsURL(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build standings request")
	}
	req.Header.Set("X-Auth-Token", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.upstream.Do(ctx, opStandings, req)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, upstream.NewUpstreamError(providerName, opStandings, resp)
	}

	var standings models.StandingsResponse
	if err := c.upstream.DecodeJSON(opStandings, resp.Body, &standings); err != nil {
		return nil, err
	}
	return &standings, nil
}
