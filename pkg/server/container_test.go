package server

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"widgets-api/internal/config"
)

func testConfig(footballURL string) *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8081",
		HTTPClient:  config.HTTPClientConfig{Timeout: 2 * time.Second},
		FootballData: config.FootballDataConfig{
			Token:         "token",
			BaseURL:       footballURL,
			CompetitionID: "2014",
			CacheTTL:      15 * time.Minute,
		},
	}
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	container, err := NewContainer(testConfig("http://127.0.0.1:0"))
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container.StandingsService == nil {
		t.Error("StandingsService is nil")
	}
	if container.NowPlayingService == nil {
		t.Error("NowPlayingService is nil")
	}
	if container.StandingsHandler == nil || container.NowPlayingHandler == nil {
		t.Error("Handlers are nil")
	}
	if container.StandingsCache.TTL() != 15*time.Minute {
		t.Errorf("Expected cache TTL 15m, got %s", container.StandingsCache.TTL())
	}

	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

// TestNewContainer_NilConfig verifies config is required
func TestNewContainer_NilConfig(t *testing.T) {
	if _, err := NewContainer(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

// TestContainerRouter verifies the router serves standings through the shared cache
func TestContainerRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var calls int32
	football := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"standings":[{"table":[{"position":1,"team":{"name":"Barcelona"}}]}]}`))
	}))
	defer football.Close()

	container, err := NewContainer(testConfig(football.URL))
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	router := container.NewRouter()
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/standings", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("Expected 1 upstream call, got %d", n)
	}
	if _, ok := container.StandingsCache.Get(); !ok {
		t.Error("Expected cache to be populated")
	}
}
