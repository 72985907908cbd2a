package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"widgets-api/internal/adapters/upstream"
	"widgets-api/internal/metrics"
	"widgets-api/internal/models"
)

const (
	providerName      = "spotify"
	defaultTokenURL   = "https://accounts.spotify.com/api/token"
	defaultAPIBaseURL = "https://api.spotify.com/v1"
	opToken           = "token"
	opCurrentlyPlay   = "currently-playing"
)

// ClientConfig configures the Spotify client
type ClientConfig struct {
	TokenURL   string
	APIBaseURL string
	HTTPClient *http.Client
	Metrics    *metrics.Manager
}

// Client talks to the Spotify accounts service and Web API
type Client struct {
	tokenURL   string
	apiBaseURL string
	upstream   *upstream.Client
}

// Playback is the outcome of a currently-playing query
type Playback struct {
	// NoContent is set when the player answered 204: nothing is playing.
	NoContent bool
	// Body is the upstream JSON, compacted with key order preserved.
	Body []byte
	// Summary is decoded from Body for logging; nil if Body is not an object.
	Summary *models.CurrentlyPlaying
}

// NewClient creates a Spotify client
func NewClient(cfg ClientConfig) *Client {
	tokenURL := strings.TrimSpace(cfg.TokenURL)
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	apiBaseURL := strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}

	return &Client{
		tokenURL:   tokenURL,
		apiBaseURL: apiBaseURL,
		upstream: upstream.NewClient(upstream.ClientConfig{
			Provider:   providerName,
			HTTPClient: cfg.HTTPClient,
			Metrics:    cfg.Metrics,
		}),
	}
}

// RefreshAccessToken exchanges the refresh token for a short-lived access token
func (c *Client) RefreshAccessToken(ctx context.Context, creds models.SpotifyCredentials) (*models.TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", creds.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build token request")
	}
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.upstream.Do(ctx, opToken, req)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, upstream.NewUpstreamError(providerName, opToken, resp)
	}

	var token models.TokenResponse
	if err := c.upstream.DecodeJSON(opToken, resp.Body, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, errors.Mark(errors.Newf("%s %s: response has no access_token", providerName, opToken), upstream.ErrInvalidBody)
	}
	return &token, nil
}

// CurrentlyPlaying queries the user's current playback.
// Only 204 is special-cased; any other reply must carry a JSON body.
func (c *Client) CurrentlyPlaying(ctx context.Context, accessToken string) (*Playback, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/me/player/currently-playing", nil)
	if err != nil {
		return nil, errors.Wrap(err, "build currently-playing request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.upstream.Do(ctx, opCurrentlyPlay, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNoContent {
		return &Playback{NoContent: true}, nil
	}

	// Compact rather than decode/encode so the caller sees the provider's key order.
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, resp.Body); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s %s: decode payload", providerName, opCurrentlyPlay), upstream.ErrInvalidBody)
	}

	playback := &Playback{Body: compacted.Bytes()}
	var summary models.CurrentlyPlaying
	if err := sonic.Unmarshal(playback.Body, &summary); err == nil {
		playback.Summary = &summary
	}
	return playback, nil
}
