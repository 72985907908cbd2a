package server

import (
	"context"
	"errors"
	"testing"

	"widgets-api/internal/config"
)

// TestConnectionManager_ReusesContainer verifies warm invocations share one container
func TestConnectionManager_ReusesContainer(t *testing.T) {
	loads := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		loads++
		return testConfig("http://127.0.0.1:0"), nil
	})

	if cm.IsHealthy() {
		t.Error("Expected manager to start without a container")
	}

	first, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer failed: %v", err)
	}
	second, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer failed: %v", err)
	}

	if first != second {
		t.Error("Expected the same container on warm invocations")
	}
	if first.StandingsCache != second.StandingsCache {
		t.Error("Expected the same standings cache")
	}
	if loads != 1 {
		t.Errorf("Expected config loaded once, got %d", loads)
	}
	if !cm.IsHealthy() || cm.LastUsed().IsZero() {
		t.Error("Expected healthy manager after first use")
	}

	if err := cm.Cleanup(); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if cm.IsHealthy() {
		t.Error("Expected no container after cleanup")
	}
}

// TestConnectionManager_RetriesFailedLoad verifies a failed build is not cached
func TestConnectionManager_RetriesFailedLoad(t *testing.T) {
	fail := true
	cm := NewConnectionManager(func() (*config.Config, error) {
		if fail {
			return nil, errors.New("config unavailable")
		}
		return testConfig("http://127.0.0.1:0"), nil
	})

	if _, err := cm.GetContainer(context.Background()); err == nil {
		t.Fatal("Expected load error")
	}

	fail = false
	if _, err := cm.GetContainer(context.Background()); err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
}
