package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment  string
	Port         string
	LogLevel     string
	HTTPClient   HTTPClientConfig
	FootballData FootballDataConfig
	Spotify      SpotifyConfig
	RateLimit    RateLimitConfig
}

// HTTPClientConfig holds settings for outbound calls to upstream APIs
type HTTPClientConfig struct {
	Timeout time.Duration
}

// FootballDataConfig holds football-data.org configuration.
// Token is not validated here; a missing token is reported per request.
type FootballDataConfig struct {
	Token         string
	BaseURL       string
	CompetitionID string
	CacheTTL      time.Duration
}

// SpotifyConfig holds Spotify Web API configuration
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
	APIBaseURL   string
}

// RateLimitConfig holds rate limiting configuration for the HTTP server
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	v.SetDefault("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org")
	v.SetDefault("FOOTBALL_DATA_COMPETITION_ID", "2014")
	v.SetDefault("STANDINGS_CACHE_TTL", "15m")
	v.SetDefault("SPOTIFY_TOKEN_URL", "https://accounts.spotify.com/api/token")
	v.SetDefault("SPOTIFY_API_BASE_URL", "https://api.spotify.com/v1")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTPClient: HTTPClientConfig{
			Timeout: v.GetDuration("HTTP_CLIENT_TIMEOUT"),
		},
		FootballData: FootballDataConfig{
			Token:         strings.TrimSpace(v.GetString("FOOTBALL_DATA_TOKEN")),
			BaseURL:       strings.TrimRight(v.GetString("FOOTBALL_DATA_BASE_URL"), "/"),
			CompetitionID: v.GetString("FOOTBALL_DATA_COMPETITION_ID"),
			CacheTTL:      v.GetDuration("STANDINGS_CACHE_TTL"),
		},
		Spotify: SpotifyConfig{
			ClientID:     strings.TrimSpace(v.GetString("SPOTIFY_CLIENT_ID")),
			ClientSecret: strings.TrimSpace(v.GetString("SPOTIFY_CLIENT_SECRET")),
			RefreshToken: strings.TrimSpace(v.GetString("SPOTIFY_REFRESH_TOKEN")),
			TokenURL:     v.GetString("SPOTIFY_TOKEN_URL"),
			APIBaseURL:   strings.TrimRight(v.GetString("SPOTIFY_API_BASE_URL"), "/"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// ConfigureLogging sets up the global logrus logger for the given configuration
func ConfigureLogging(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Environment == "production" || IsServerlessMode() {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
