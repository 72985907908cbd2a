package services

import (
	"github.com/cockroachdb/errors"
)

// Messages returned to callers when credentials are missing
const (
	MissingFootballTokenMessage      = "Missing FOOTBALL_DATA_TOKEN env var."
	MissingSpotifyCredentialsMessage = "Missing SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET or SPOTIFY_REFRESH_TOKEN in env"
)

// ConfigError reports a missing or invalid setting detected before any
// upstream call. Message is returned to the caller verbatim.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError
func NewConfigError(message string, err error) *ConfigError {
	return &ConfigError{Message: message, Err: err}
}

// AsConfigError extracts a ConfigError from an error chain
func AsConfigError(err error) (*ConfigError, bool) {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr, true
	}
	return nil, false
}
