package services

import (
	"context"

	"widgets-api/internal/adapters/spotify"
	"widgets-api/internal/models"
)

// StandingsService defines the standings business logic
type StandingsService interface {
	// GetStandings returns the first N rows of the table, N parsed from topParam
	GetStandings(ctx context.Context, topParam string) (*models.StandingsPayload, error)
}

// NowPlayingService defines the now-playing business logic
type NowPlayingService interface {
	// GetNowPlaying refreshes an access token and reads current playback
	GetNowPlaying(ctx context.Context) (*NowPlayingResult, error)
}

// StandingsProvider fetches the full upstream standings payload
type StandingsProvider interface {
	FetchStandings(ctx context.Context, token string) (*models.StandingsResponse, error)
}

// PlaybackProvider performs the two Spotify calls
type PlaybackProvider interface {
	RefreshAccessToken(ctx context.Context, creds models.SpotifyCredentials) (*models.TokenResponse, error)
	CurrentlyPlaying(ctx context.Context, accessToken string) (*spotify.Playback, error)
}

// NowPlayingResult is either "not playing" or the raw upstream JSON
type NowPlayingResult struct {
	// Idle is set when the player reported no content
	Idle bool
	// Body holds the upstream JSON when Idle is false
	Body []byte
}
