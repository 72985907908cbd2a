package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Bounds of the standings "top" query parameter
const (
	DefaultTop = 5
	MinTop     = 1
	MaxTop     = 20
)

var validate = validator.New()

// FootballCredentials holds the football-data.org API token
type FootballCredentials struct {
	Token string `validate:"required"`
}

// SpotifyCredentials holds what the refresh_token grant needs
type SpotifyCredentials struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	RefreshToken string `validate:"required"`
}

// StandingsQuery is the parsed standings request
type StandingsQuery struct {
	Top int `validate:"min=1,max=20"`
}

// Validate checks that the token is present
func (c FootballCredentials) Validate() error {
	return validate.Struct(c)
}

// Validate checks that all three credentials are present
func (c SpotifyCredentials) Validate() error {
	return validate.Struct(c)
}

// ParseTop turns the raw "top" parameter into a row limit.
// Missing, non-numeric and out-of-range values fall back to DefaultTop;
// fractional values inside the range are truncated.
func ParseTop(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTop
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < MinTop || value > MaxTop {
		return DefaultTop
	}

	query := StandingsQuery{Top: int(math.Trunc(value))}
	if err := validate.Struct(query); err != nil {
		return DefaultTop
	}
	return query.Top
}
