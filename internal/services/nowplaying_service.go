package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"widgets-api/internal/models"
)

// nowPlayingService implements the NowPlayingService interface
type nowPlayingService struct {
	provider PlaybackProvider
	creds    models.SpotifyCredentials
}

// NewNowPlayingService creates a new now-playing service instance
func NewNowPlayingService(provider PlaybackProvider, creds models.SpotifyCredentials) NowPlayingService {
	return &nowPlayingService{
		provider: provider,
		creds:    creds,
	}
}

// GetNowPlaying runs the token refresh and then the playback query.
// The access token is not kept between calls.
func (s *nowPlayingService) GetNowPlaying(ctx context.Context) (*NowPlayingResult, error) {
	if err := s.creds.Validate(); err != nil {
		logrus.Error("Now-playing requested without complete Spotify credentials")
		return nil, NewConfigError(MissingSpotifyCredentialsMessage, err)
	}

	token, err := s.provider.RefreshAccessToken(ctx, s.creds)
	if err != nil {
		return nil, err
	}

	playback, err := s.provider.CurrentlyPlaying(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	if playback.NoContent {
		logrus.Debug("Nothing is playing")
		return &NowPlayingResult{Idle: true}, nil
	}

	if summary := playback.Summary; summary != nil && summary.Item != nil {
		logrus.WithFields(logrus.Fields{
			"is_playing": summary.IsPlaying,
			"track":      summary.Item.Name,
			"artists":    strings.Join(summary.Item.ArtistNames(), ", "),
		}).Debug("Current playback")
	}

	return &NowPlayingResult{Body: playback.Body}, nil
}
